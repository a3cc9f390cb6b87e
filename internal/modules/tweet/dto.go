package tweet

type CreateRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

type ListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
