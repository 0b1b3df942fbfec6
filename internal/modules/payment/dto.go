package payment

type PaymentRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}
