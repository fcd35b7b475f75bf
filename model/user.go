package model

import "time"

// User represents a registered dashboard user (for internal storage)
type User struct {
	ID           string    `json:"id"`           // UUID
	Username     string    `json:"username"`     // Unique login name
	PasswordHash string    `json:"passwordHash"` // "salt:derivedKeyHex", PBKDF2-SHA512
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthRequest carries registration and login credentials
type AuthRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret1"`
}

// LoginResponse carries the signed bearer token
type LoginResponse struct {
	Token string `json:"token"`
}
