package dto

import (
	"github.com/jyoo0515/docuflow/internal/core/domain"
)

// RegisterRequest defines the data required to register a member.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	LoginID  string `json:"loginID" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credential payload for login.
type LoginRequest struct {
	LoginID  string `json:"loginID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	EmployeeCode     string `json:"employeeCode"`
	Name             string `json:"name"`
	LoginID          string `json:"loginID"`
	Email            string `json:"email"`
	JoinDate         string `json:"joinDate"`
	PersonalStoreRef string `json:"personalStoreRef,omitempty"`
}

// LoginResponse carries the access token alongside the member profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		EmployeeCode:     user.EmployeeCode,
		Name:             user.Name,
		LoginID:          user.LoginID,
		Email:            user.Email,
		JoinDate:         user.JoinDate,
		PersonalStoreRef: user.PersonalStoreRef,
	}
}
