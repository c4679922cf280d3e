package req

type EditProfileRequest struct {
	Username string `form:"username" json:"username" validate:"required,min=3"`
	Email    string `form:"email" json:"email" validate:"omitempty,email"`
}
