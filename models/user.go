package models

import "time"

// UserRole представляет роли пользователей, соответствующие ENUM в БД.
type UserRole string

const (
	RolePlayer               UserRole = "player"
	RoleOfficial             UserRole = "official"
	RoleChampionshipOfficial UserRole = "championship_official"
	RoleAdmin                UserRole = "admin"
	RoleSuperAdmin           UserRole = "super_admin"
)

// ValidUserRole reports whether role is a member of the enumerated role set.
func ValidUserRole(role UserRole) bool {
	switch role {
	case RolePlayer, RoleOfficial, RoleChampionshipOfficial, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User представляет пользователя лиги (игрок, директив или администратор).
type User struct {
	ID           int       `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	NationalID   string    `json:"national_id" db:"national_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	Address      *string   `json:"address,omitempty" db:"address"`
	Canton       *string   `json:"canton,omitempty" db:"canton"`
	Parish       *string   `json:"parish,omitempty" db:"parish"`
	Neighborhood *string   `json:"neighborhood,omitempty" db:"neighborhood"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
