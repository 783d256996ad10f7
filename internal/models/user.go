package models

import "time"

// Roles assignable to a user. Admin is required for catalog writes.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account. The password hash is never serialized.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:user"`
	CreatedAt time.Time `json:"created_at"`
}
