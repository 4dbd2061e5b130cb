package model

// CollectionUserAuth is the document collection holding registered users.
const CollectionUserAuth = "userauth"

// RoleUser is the default role assigned at signup.
const RoleUser = "user"

// UserAuth represents a registered user. The stored document keeps the
// password digest, never the raw password.
type UserAuth struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Company      string `json:"company,omitempty"`
	Role         string `json:"role"`
}
