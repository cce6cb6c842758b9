package auth

import "github.com/ranstack/portfolio-core/internal/models"

// LoginDTO carries the identity-provider ID token.
type LoginDTO struct {
	Token string `json:"token" binding:"required"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login,omitempty"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *models.UserModel) userResponse {
	r := userResponse{ID: u.ID, Email: u.Email, Role: u.Role}
	if u.LastLogin != nil {
		r.LastLogin = u.LastLogin.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return r
}
