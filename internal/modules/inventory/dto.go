package inventory

type CreateEquipmentRequest struct {
	Name         string `json:"name" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Responsible  string `json:"responsible" binding:"required"`
	Condition    string `json:"condition" binding:"required"`
}
