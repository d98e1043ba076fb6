package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"notblank,contact_email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r RegisterRequest) Validate() error {
	return validate.Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"notblank,contact_email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return validate.Struct(r)
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
