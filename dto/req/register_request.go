package req

type RegisterRequest struct {
	Username        string `form:"username" json:"username" validate:"required,min=3"`
	Password        string `form:"password1" json:"password1" validate:"required,min=8"`
	ConfirmPassword string `form:"password2" json:"password2" validate:"required,eqfield=Password"`
}
