package domain

import "time"

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	PasswordHash       string    `json:"-"`
	Role               UserRole  `json:"role"`
	SubscriptionActive bool      `json:"subscription_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
