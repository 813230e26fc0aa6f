package models

import (
	"time"
)

// Tenant represents the tenant table
type Tenant struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Website      string    `db:"website" json:"website"`
	APIKeyHash   string    `db:"api_key_hash" json:"-"`
	APIKeyPrefix string    `db:"api_key_prefix" json:"apiKeyPrefix"`
	CreatedTime  time.Time `db:"created_time" json:"createdTime"`
}

// RegisterRequest is the validated body of POST /register
type RegisterRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Website string `json:"website" validate:"max=255"`
}

// RegisterResponse is returned once, carrying the only copy of the plaintext key
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	APIKey  string `json:"apiKey"`
}
