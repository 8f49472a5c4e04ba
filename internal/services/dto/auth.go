package dto

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResult is what a successful login hands back to the handler.
type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"-"`
}

type RegisterRequest struct {
	Email                string `json:"email" form:"email" validate:"required,email"`
	Password             string `json:"password" form:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation" validate:"required,eqfield=Password"`
	Name                 string `json:"name" form:"name" validate:"required,max=100"`
	Surname              string `json:"surname" form:"surname" validate:"required,max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword      string `json:"current_password" form:"current_password" validate:"required"`
	Password             string `json:"password" form:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation" validate:"required,eqfield=Password"`
}
