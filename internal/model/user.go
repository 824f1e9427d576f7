package model

import (
	"time"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID           string    `db:"id" json:"id" bson:"_id"`
	Email        string    `db:"email" json:"email" bson:"email"`
	Name         string    `db:"name" json:"name" bson:"name"`
	Phone        *string   `db:"phone" json:"phone" bson:"phone,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-" bson:"password_hash"`
	Role         string    `db:"role" json:"role" bson:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at" bson:"created_at"`
}

// UserSummary is the public subset returned alongside access tokens.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
