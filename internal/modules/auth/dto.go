package auth

type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required" validate:"required,min=2,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=50"`
}

type RegisterCompanyRequest struct {
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Password    string `json:"password" binding:"required" validate:"required,min=8,max=72"`
	Name        string `json:"name" binding:"required" validate:"required,min=2,max=255"`
	CompanyName string `json:"company_name" binding:"required" validate:"required,min=2,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
