package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// PaymentPayload formats the payment-intent string encoded into the
// checkout QR: card to transfer to, amount, and the order number as the
// transfer comment.
func PaymentPayload(cardNumber string, amount int, orderNumber string) string {
	return fmt.Sprintf("PAY|%s|%d|order_%s", cardNumber, amount, orderNumber)
}

// Encoder renders a payload into a displayable image.
type Encoder interface {
	Encode(payload string, size int) ([]byte, error)
}

// PNGEncoder renders payment QR codes as PNG.
type PNGEncoder struct{}

func (PNGEncoder) Encode(payload string, size int) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, size)
}
