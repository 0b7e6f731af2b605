package models

import "time"

// RefreshToken stores the SHA-256 hash of an issued refresh token. The raw
// token is only ever held by the client.
type RefreshToken struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"createdAt"`
}
