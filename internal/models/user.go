package models

// DefaultRole is assigned on first OAuth login and on user creation when no
// role is supplied.
const DefaultRole = "ROLE_USER"

// User represents a durable account. OAuth provisioning matches on Username
// and refreshes Username/Email on re-login; Role survives re-login untouched.
type User struct {
	Base
	Username     string `gorm:"not null;index"`
	Email        string `gorm:"not null;default:''"`
	Role         string `gorm:"not null;default:'ROLE_USER'"`
	PasswordHash string `gorm:"column:pw;not null;default:''"` // legacy local-auth field, unused by the OAuth flow
}

func (User) TableName() string { return "users" }
