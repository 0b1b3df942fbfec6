package domain

import "time"

// Reservation is a pending request for one equipment unit. Competing
// reservations for the same unit are ordered by priority (higher wins)
// and then by submission time (earlier wins).
type Reservation struct {
	ID             int64     `json:"id"`
	EquipmentID    int64     `json:"equipment_id" validate:"required"`
	RequesterEmail string    `json:"requester_email" validate:"required,email"`
	SubmittedAt    time.Time `json:"submitted_at"`
	Priority       int       `json:"priority"`

	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
}
