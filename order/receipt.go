package order

import (
	"github.com/Tuka1911/dymokminiapp/models"
	"github.com/Tuka1911/dymokminiapp/qr"
)

// BuildReceipt renders an order into its structured receipt, including
// the manager deep link and the payment QR payload.
func BuildReceipt(o models.Order, managerBase string) models.Receipt {
	lines := make([]models.ReceiptLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, models.ReceiptLine{
			Name:     l.Name,
			Flavor:   l.SelectedFlavor,
			Price:    l.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}
	return models.Receipt{
		OrderNumber: o.Number,
		Timestamp:   o.Timestamp,
		Lines:       lines,
		Subtotal:    o.Totals.Subtotal,
		DeliveryFee: o.Totals.DeliveryFee,
		Discount:    o.Totals.Discount,
		Total:       o.Totals.Total,
		Payment:     o.Payment,
		ManagerLink: ManagerDeepLink(managerBase, o.Number),
		QRPayload:   qr.PaymentPayload(o.Payment.CardNumber, o.Totals.Total, o.Number),
	}
}
