package domain

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the two kinds of registered identities.
type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleMerchant Role = "MERCHANT"
)

// Identity represents an enrolled participant. The biometric key is an
// opaque one-way credential minted at enrollment and immutable thereafter.
type Identity struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	MerchantName string    `json:"merchant_name,omitempty"` // Merchants only
	BiometricKey string    `json:"-"`                       // Opaque credential, never expose
	CreatedAt    time.Time `json:"created_at"`
}

// IsMerchant returns true if the identity is registered as a merchant.
func (i *Identity) IsMerchant() bool {
	return i.Role == RoleMerchant
}

// KeyMatches compares a captured key against the stored credential in
// constant time, so a mismatch reveals nothing about where it diverged.
func (i *Identity) KeyMatches(key string) bool {
	return subtle.ConstantTimeCompare([]byte(i.BiometricKey), []byte(key)) == 1
}
