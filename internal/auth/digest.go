package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenLength is the truncation length of the demo token.
const TokenLength = 32

// HashPassword returns the hex-encoded sha256 digest of the raw password.
// Deliberately deterministic: sign-in compares digests by equality.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// DeriveToken computes the demo token for a user: the hex sha256 digest of the
// email concatenated with the record id, truncated to TokenLength. Anyone who
// knows both inputs can recompute it; it is not a verifiable credential and
// must never be treated as one.
func DeriveToken(email, userID string) string {
	sum := sha256.Sum256([]byte(email + userID))
	return hex.EncodeToString(sum[:])[:TokenLength]
}
