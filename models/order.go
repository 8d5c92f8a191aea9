package models

import "time"

// Fee is a delivery fee outcome. ManualQuote marks the "a human operator
// will quote this later" sentinel for the outside-city zone; it is a
// distinct outcome, never a plain zero amount.
type Fee struct {
	Amount      int  `json:"amount"`
	ManualQuote bool `json:"manualQuote"`
}

// Totals are the derived checkout amounts:
// Total = Subtotal - Discount + DeliveryFee.Amount.
type Totals struct {
	Subtotal    int `json:"subtotal"`
	Discount    int `json:"discount"`
	DeliveryFee Fee `json:"deliveryFee"`
	Total       int `json:"total"`
}

// PaymentInstructions are the static transfer details printed on every
// receipt. Configuration constants, not secrets.
type PaymentInstructions struct {
	CardNumber string `json:"cardNumber"`
	BankName   string `json:"bankName"`
	Recipient  string `json:"recipient"`
}

// Order is created exactly once per successful submission and never
// mutated afterwards. Lines are a deep copy of the cart at submission
// time, never aliased to the live cart.
type Order struct {
	ID        string              `json:"id"` // collision-safe internal id
	Number    string              `json:"number"`
	Timestamp time.Time           `json:"timestamp"`
	Lines     []CartLine          `json:"lines"`
	Totals    Totals              `json:"totals"`
	Payment   PaymentInstructions `json:"payment"`
}

// ReceiptLine is one printed row of the receipt.
type ReceiptLine struct {
	Name     string `json:"name"`
	Flavor   string `json:"flavor"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal int    `json:"subtotal"`
}

// Receipt is the structured order artifact handed back to the customer.
type Receipt struct {
	OrderNumber string              `json:"orderNumber"`
	Timestamp   time.Time           `json:"timestamp"`
	Lines       []ReceiptLine       `json:"lines"`
	Subtotal    int                 `json:"subtotal"`
	DeliveryFee Fee                 `json:"deliveryFee"`
	Discount    int                 `json:"discount"`
	Total       int                 `json:"total"`
	Payment     PaymentInstructions `json:"payment"`
	ManagerLink string              `json:"managerLink"`
	QRPayload   string              `json:"qrPayload"`
}

// OrderRequest is the wire shape sent to the submission backend: the order
// content before a number has been generated for it.
type OrderRequest struct {
	Phone       string     `json:"phone"`
	Address     string     `json:"address,omitempty"`
	DeviceCheck bool       `json:"deviceCheck"`
	Zone        string     `json:"zone"`
	Lines       []CartLine `json:"lines"`
	Totals      Totals     `json:"totals"`
}

// OrderRecord is the archived row operators reconcile payments against.
type OrderRecord struct {
	RecordID    uint      `gorm:"primaryKey" json:"-"`
	OrderID     string    `gorm:"uniqueIndex;size:36" json:"order_id"`
	Number      string    `gorm:"index" json:"number"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Zone        string    `json:"zone"`
	Subtotal    int       `json:"subtotal"`
	Discount    int       `json:"discount"`
	DeliveryFee int       `json:"delivery_fee"`
	ManualQuote bool      `json:"manual_quote"`
	Total       int       `json:"total"`
	Receipt     string    `json:"receipt"` // receipt JSON
	CreatedAt   time.Time `json:"created_at"`
}
