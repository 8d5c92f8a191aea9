package order

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/checkout"
	"github.com/Tuka1911/dymokminiapp/models"
)

var (
	waka10000 = models.Product{
		ID:      "waka-10000",
		Name:    "Waka 10000",
		Price:   15000,
		Flavors: []string{"Малиновый арбуз"},
	}
	waka8000 = models.Product{
		ID:      "waka-8000",
		Name:    "Waka 8000",
		Price:   12000,
		Flavors: []string{"Арбуз"},
	}

	testPayment = models.PaymentInstructions{
		CardNumber: "4400 4300 1234 5678",
		BankName:   "Kaspi Bank",
		Recipient:  "Дымок",
	}
)

type failingSubmitter struct{}

func (failingSubmitter) Submit(ctx context.Context, req models.OrderRequest) error {
	return &SubmissionError{Msg: "backend unreachable"}
}

type capturingSubmitter struct {
	req models.OrderRequest
}

func (s *capturingSubmitter) Submit(ctx context.Context, req models.OrderRequest) error {
	s.req = req
	return nil
}

func scenarioCart() (*cart.Store, *cart.MemoryStorage) {
	storage := cart.NewMemoryStorage()
	store := cart.NewStore(storage)
	store.AddItem(waka10000, "Малиновый арбуз")
	store.AddItem(waka10000, "Малиновый арбуз")
	store.AddItem(waka8000, "Арбуз")
	return store, storage
}

func scenarioForm() checkout.Form {
	return checkout.Form{
		Phone:   "+77071234567",
		Address: "Абая 15",
		Zone:    checkout.ZoneCity,
	}
}

func newFinalizer(sub Submitter, archive Archive) *Finalizer {
	return &Finalizer{
		Rules:       checkout.DefaultRules(),
		Payment:     testPayment,
		ManagerBase: "https://t.me/dymokminimarket",
		Submitter:   sub,
		Archive:     archive,
	}
}

func TestSubmitInvalidPhoneFailsFast(t *testing.T) {
	store, _ := scenarioCart()
	form := scenarioForm()
	form.Phone = "abc"

	fin := newFinalizer(&capturingSubmitter{}, NewMemoryArchive())
	ord, _, err := fin.Submit(context.Background(), store, form)

	var verr *checkout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Nil(t, ord, "no order is created on the validation path")
	assert.Equal(t, 3, store.TotalItemCount(), "cart untouched")
}

func TestSubmitEmptyCartRejected(t *testing.T) {
	store := cart.NewStore(cart.NewMemoryStorage())

	fin := newFinalizer(&capturingSubmitter{}, NewMemoryArchive())
	_, _, err := fin.Submit(context.Background(), store, scenarioForm())

	var verr *checkout.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSubmitSuccessClearsCartAndSnapshot(t *testing.T) {
	store, storage := scenarioCart()
	archive := NewMemoryArchive()

	fin := newFinalizer(&capturingSubmitter{}, archive)
	ord, receipt, err := fin.Submit(context.Background(), store, scenarioForm())
	require.NoError(t, err)
	require.NotNil(t, ord)

	assert.Equal(t, 0, store.TotalItemCount())
	_, ok, loadErr := storage.Load(cart.SnapshotKey)
	require.NoError(t, loadErr)
	assert.False(t, ok, "persisted snapshot reflects the empty cart")

	// The order still reflects the pre-clear contents.
	require.Len(t, ord.Lines, 2)
	assert.Equal(t, 42000, ord.Totals.Subtotal)
	assert.Equal(t, 44500, ord.Totals.Total)
	assert.Equal(t, receipt.Total, ord.Totals.Total)

	recs, err := archive.List()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, ord.Number, recs[0].Number)
}

func TestSubmitFailureLeavesCartIntact(t *testing.T) {
	store, storage := scenarioCart()
	archive := NewMemoryArchive()

	fin := newFinalizer(failingSubmitter{}, archive)
	ord, _, err := fin.Submit(context.Background(), store, scenarioForm())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Nil(t, ord)
	assert.Equal(t, 3, store.TotalItemCount())

	_, ok, loadErr := storage.Load(cart.SnapshotKey)
	require.NoError(t, loadErr)
	assert.True(t, ok, "snapshot still holds the cart for the retry")

	recs, err := archive.List()
	require.NoError(t, err)
	assert.Empty(t, recs, "nothing archived on failure")
}

func TestOrderLinesNotAliasedToLiveCart(t *testing.T) {
	store, _ := scenarioCart()

	fin := newFinalizer(&capturingSubmitter{}, NewMemoryArchive())
	ord, _, err := fin.Submit(context.Background(), store, scenarioForm())
	require.NoError(t, err)

	// Refill and mutate the cart after the order exists.
	store.AddItem(waka10000, "Малиновый арбуз")
	store.SetQuantity("waka-10000", "Малиновый арбуз", 50)

	require.Len(t, ord.Lines, 2)
	assert.Equal(t, 2, ord.Lines[0].Quantity)
}

func TestSubmitWithPromo(t *testing.T) {
	store, _ := scenarioCart()
	form := scenarioForm()
	form.PromoCode = "DISCOUNT10"

	sub := &capturingSubmitter{}
	fin := newFinalizer(sub, NewMemoryArchive())
	ord, receipt, err := fin.Submit(context.Background(), store, form)
	require.NoError(t, err)

	assert.Equal(t, 4200, ord.Totals.Discount)
	assert.Equal(t, 42000-4200+2500, ord.Totals.Total)
	assert.Equal(t, ord.Totals, sub.req.Totals, "request carries the same totals")
	assert.Equal(t, 4200, receipt.Discount)
}

func TestReceiptContents(t *testing.T) {
	store, _ := scenarioCart()
	form := scenarioForm()
	form.Zone = checkout.ZoneOutside

	fin := newFinalizer(&capturingSubmitter{}, NewMemoryArchive())
	ord, receipt, err := fin.Submit(context.Background(), store, form)
	require.NoError(t, err)

	assert.Equal(t, ord.Number, receipt.OrderNumber)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{6}-\d{4}$`), receipt.OrderNumber)
	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, 30000, receipt.Lines[0].Subtotal)
	assert.Equal(t, 12000, receipt.Lines[1].Subtotal)
	assert.True(t, receipt.DeliveryFee.ManualQuote, "outside zone surfaces the manual quote, not a zero")
	assert.Equal(t, testPayment, receipt.Payment)
	assert.Equal(t, "https://t.me/dymokminimarket?start=order_"+ord.Number, receipt.ManagerLink)
	assert.Contains(t, receipt.QRPayload, ord.Number)
	assert.Contains(t, receipt.QRPayload, testPayment.CardNumber)
}
