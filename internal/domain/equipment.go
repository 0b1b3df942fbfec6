package domain

import "time"

type ConditionStatus string

const (
	ConditionOperational    ConditionStatus = "operational"
	ConditionNeedsRepair    ConditionStatus = "needs_repair"
	ConditionDecommissioned ConditionStatus = "decommissioned"
)

func (c ConditionStatus) Valid() bool {
	switch c {
	case ConditionOperational, ConditionNeedsRepair, ConditionDecommissioned:
		return true
	}
	return false
}

type Equipment struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name" validate:"required"`
	SerialNumber string          `json:"serial_number" validate:"required" gorm:"uniqueIndex"`
	Location     string          `json:"location"`
	Responsible  string          `json:"responsible"`
	Condition    ConditionStatus `json:"condition"`
	CreatedAt    time.Time       `json:"created_at"`
}
