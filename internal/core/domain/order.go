package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how an order was paid.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentQRIS  PaymentMethod = "qris"
	PaymentOther PaymentMethod = "other"
)

// qrisFeeRate is the fixed QRIS transaction fee of 0.3%, charged by the
// payment network on every QRIS order.
var qrisFeeRate = decimal.RequireFromString("0.003")

// QRISFee returns the rupiah fee for a QRIS payment of the given total,
// rounded to the nearest rupiah. Non-QRIS payments carry no fee.
func QRISFee(method PaymentMethod, total int64) int64 {
	if method != PaymentQRIS {
		return 0
	}
	return decimal.NewFromInt(total).Mul(qrisFeeRate).Round(0).IntPart()
}

// Order is a captured point-of-sale transaction. All amounts are in whole
// rupiah. QRISFee is computed once at creation and never changes.
type Order struct {
	OrderID         string        `json:"orderID"` // Primary Key (UUID)
	OutletID        string        `json:"outletID"`
	MemberID        *string       `json:"memberID"` // Optional loyalty member
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	SubTotal        int64         `json:"subTotal"`
	Tax             int64         `json:"tax"`
	DiscountAmount  int64         `json:"discountAmount"`
	ServiceCharge   int64         `json:"serviceCharge"`
	Total           int64         `json:"total"`
	QRISFee         int64         `json:"qrisFee"`
	TransactionTime time.Time     `json:"transactionTime"`
	Items           []OrderItem   `json:"items,omitempty"`
	AuditFields                   // Embed common audit fields
}

// OrderItem is a single line of an order, priced at capture time so later
// product price changes do not rewrite history.
type OrderItem struct {
	OrderItemID string `json:"orderItemID"` // Primary Key (UUID)
	OrderID     string `json:"orderID"`
	ProductID   string `json:"productID"`
	Quantity    int64  `json:"quantity"`
	Price       int64  `json:"price"`    // Unit price at time of sale
	SubTotal    int64  `json:"subTotal"` // Quantity x Price
}
