package dtos

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Phone   string `json:"phone" binding:"max=40"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

type UserCreationRequest struct {
	Username string `json:"username" yaml:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" yaml:"password" binding:"required,min=8,max=72"`
}
