// models/user.go
package models

import (
	"slices"
	"time"
)

// UserRole is a closed set: regular collaborators and the single master.
type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleMaster UserRole = "master"
)

type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PasswordHash  string   `json:"password_hash"`
	MotherName    string   `json:"mother_name"`
	FavoriteColor string   `json:"favorite_color"`
	Role          UserRole `json:"role"`
	IsActive      bool     `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`

	// Phases individually granted to this user, kept sorted ascending.
	UnlockedPhases []int `json:"unlocked_phases"`
}

// IndividuallyUnlocked reports whether the user holds an individual unlock
// for the given phase. The master holds every phase implicitly; the global
// phase gate is checked elsewhere and applies to masters too.
func (u *User) IndividuallyUnlocked(phase int) bool {
	if u.Role == RoleMaster {
		return true
	}
	return slices.Contains(u.UnlockedPhases, phase)
}

// UserInfo is the public projection of a User returned by the API.
// Credentials and recovery answers never leave the repository layer.
type UserInfo struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           UserRole  `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UnlockedPhases []int     `json:"unlocked_phases"`
}

func (u *User) Info() UserInfo {
	phases := u.UnlockedPhases
	if phases == nil {
		phases = []int{}
	}
	return UserInfo{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UnlockedPhases: phases,
	}
}
