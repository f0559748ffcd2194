package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

// User is a staff account used only for login; usernames are stored
// lower-cased.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedDate  time.Time `json:"createdDate"`
	Enabled      bool      `json:"enabled"`
}

func NewUser(username, passwordHash, role string) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrInvalidArgument)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash required", ErrInvalidArgument)
	}
	if role == "" {
		role = RoleStaff
	}
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedDate:  time.Now().UTC(),
		Enabled:      true,
	}, nil
}
