package reservation

import "equiptrack/internal/domain"

// Priority classes for competing reservations. Higher wins.
const (
	PriorityBase     = 0
	PriorityEntitled = 1
	PriorityTeacher  = 2
)

// AssignPriority maps the requester's role and subscription entitlement to
// a priority class. Pure and total: unknown roles land on the base class.
// Entitlement is sampled by the caller at creation time and never
// re-evaluated for reservations already in the queue.
func AssignPriority(role domain.UserRole, entitled bool) int {
	switch role {
	case domain.RoleTeacher:
		return PriorityTeacher
	case domain.RoleStudent:
		if entitled {
			return PriorityEntitled
		}
		return PriorityBase
	default:
		return PriorityBase
	}
}
