package auth

type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required,min=3"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	FullName string `form:"full_name" json:"full_name" binding:"required"`
	Password string `form:"password" json:"password" binding:"required,min=6"`

	// filled by the handler after the object-storage upload
	AvatarURL     string `form:"-" json:"-"`
	CoverImageURL string `form:"-" json:"-"`
}

type LoginRequest struct {
	// Identifier is a username or an email; both are unique so at most one
	// account can match.
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
