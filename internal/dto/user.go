package dto

import "github.com/lucasmonteiro/occurrence-api/internal/models"

// UserDTO represents a user in API responses. The credential hash never
// leaves the server.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Matricula string `json:"matricula"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		Matricula: user.Matricula,
	}
}
