package contact

type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required" validate:"required,min=2,max=255"`
	Email   string `json:"email" binding:"required" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" binding:"required" validate:"required,min=10,max=5000"`
}
