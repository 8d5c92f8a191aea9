package order

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/checkout"
	"github.com/Tuka1911/dymokminiapp/models"
)

// Finalizer turns a completed checkout plus the current cart into an
// immutable order and its receipt. On success the cart is cleared, in
// memory and in storage; on any failure the cart is left untouched so
// the user can retry.
type Finalizer struct {
	Rules       checkout.Rules
	Payment     models.PaymentInstructions
	ManagerBase string
	Submitter   Submitter
	Archive     Archive
	OnOrder     func(models.Order, models.Receipt)
}

// Submit runs the finalization pipeline: fail-fast validation, cart
// snapshot, totals, order number, receipt, backend submission, archive,
// cart clear. No order number is generated on the validation-failure path.
func (f *Finalizer) Submit(ctx context.Context, store *cart.Store, form checkout.Form) (*models.Order, models.Receipt, error) {
	if err := checkout.ValidatePhone(form.Phone); err != nil {
		return nil, models.Receipt{}, err
	}

	lines := store.Lines()
	if len(lines) == 0 {
		return nil, models.Receipt{}, &checkout.ValidationError{Field: "cart", Msg: "cart is empty"}
	}

	totals := checkout.QuoteTotals(f.Rules, form.PromoCode, form.Zone, store.TotalPrice())
	now := time.Now()
	ord := models.Order{
		ID:        uuid.NewString(),
		Number:    Number(now),
		Timestamp: now,
		Lines:     lines, // already a copy, never the live cart slice
		Totals:    totals,
		Payment:   f.Payment,
	}

	req := models.OrderRequest{
		Phone:       form.Phone,
		Address:     form.Address,
		DeviceCheck: form.DeviceCheck,
		Zone:        string(form.Zone),
		Lines:       lines,
		Totals:      totals,
	}
	if err := f.Submitter.Submit(ctx, req); err != nil {
		var serr *SubmissionError
		if !errors.As(err, &serr) {
			err = &SubmissionError{Msg: err.Error()}
		}
		return nil, models.Receipt{}, err
	}

	receipt := BuildReceipt(ord, f.ManagerBase)

	if f.Archive != nil {
		rec := recordFor(ord, form, receipt)
		if err := f.Archive.Save(&rec); err != nil {
			// The backend already accepted the order; losing the local
			// archive row is an observability problem, not a checkout
			// failure.
			log.Printf("order: failed to archive %s: %v", ord.Number, err)
		}
	}

	store.Clear()

	if f.OnOrder != nil {
		f.OnOrder(ord, receipt)
	}
	return &ord, receipt, nil
}

func recordFor(ord models.Order, form checkout.Form, receipt models.Receipt) models.OrderRecord {
	payload, err := json.Marshal(receipt)
	if err != nil {
		log.Printf("order: failed to encode receipt for %s: %v", ord.Number, err)
	}
	return models.OrderRecord{
		OrderID:     ord.ID,
		Number:      ord.Number,
		Phone:       form.Phone,
		Address:     form.Address,
		Zone:        string(form.Zone),
		Subtotal:    ord.Totals.Subtotal,
		Discount:    ord.Totals.Discount,
		DeliveryFee: ord.Totals.DeliveryFee.Amount,
		ManualQuote: ord.Totals.DeliveryFee.ManualQuote,
		Total:       ord.Totals.Total,
		Receipt:     string(payload),
		CreatedAt:   ord.Timestamp,
	}
}
