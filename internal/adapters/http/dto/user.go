package dto

import "github.com/quotevault/quotevault/internal/domain"

// UserResponse is the JSON shape of the authenticated identity.
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// NewUserResponse converts a domain user to its response DTO.
func NewUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}
