package billing

// CashReport is the daily aggregate of registered payments, split by payment
// method. Total is always Cash + Card. Pending tracks the day's appointments
// that are still awaiting payment; they contribute nothing to the sums.
type CashReport struct {
	Date          string  `json:"date"`
	Total         float64 `json:"total"`
	Cash          float64 `json:"cash"`
	Card          float64 `json:"card"`
	PendingCount  int     `json:"pending_count"`
	PendingAmount float64 `json:"pending_amount"`
}
