package dto

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"nurse@school.edu.vn"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
}

// RegisterRequest represents an admin creating a staff or parent account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"omitempty"`
	RoleType string `json:"roleType" binding:"required,oneof=ADMIN STAFF PARENT"`
}

// RefreshTokenRequest represents a token refresh attempt
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries a freshly issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}
