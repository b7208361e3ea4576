package public

import "github.com/luxe-studio/luxe-site/internal/public/domain"

type contactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (req contactRequest) toDomain() domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	}
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
