package reservation

type CreateReservationRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
}

// AdmissionResult reports the outcome of one queue-processing cycle.
// Admitted is empty when the queue held no reservations; Cleared counts
// the winner's removed rows (the whole backlog for that unit, not one).
type AdmissionResult struct {
	EquipmentID int64  `json:"equipment_id"`
	Admitted    string `json:"admitted,omitempty"`
	Cleared     int64  `json:"cleared"`
}
