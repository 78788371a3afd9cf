package request

// AdminLoginRequest represents an admin login request
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
