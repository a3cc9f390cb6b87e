package comment

import "github.com/MashookhKhanlol/youtube-clone/internal/domain"

type AddRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

type ListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type ListResult struct {
	Comments []domain.Comment `json:"comments"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}
