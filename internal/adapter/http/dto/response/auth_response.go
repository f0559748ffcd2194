package response

import "tailoring_app/internal/usecase"

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func FromLoginResult(r *usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, Username: r.Username, Role: r.Role}
}
