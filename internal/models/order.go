package models

import "time"

// Order statuses. Transitions between them are intentionally unrestricted:
// an admin may set any status from any other status.
const (
	StatusPending   = "Pending"
	StatusPaid      = "Paid"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// Accepted payment methods.
const (
	PaymentTransfer = "transfer"
	PaymentCash     = "cash"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	return m == PaymentTransfer || m == PaymentCash
}

// Order records a purchase. ProductName and TotalAmount are snapshots taken
// at creation time; later product edits or deletions do not touch them.
type Order struct {
	ID              string    `json:"id"`
	OrderNumber     string    `json:"orderNumber"`
	UserID          string    `json:"userId"`
	UserEmail       string    `json:"userEmail"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	Size            string    `json:"size"`
	Quantity        int       `json:"quantity"`
	TotalAmount     int       `json:"totalAmount"`
	PaymentMethod   string    `json:"paymentMethod"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
