package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentPayload(t *testing.T) {
	payload := PaymentPayload("4400 4300 1234 5678", 44500, "ORD-240709-1234")
	assert.Equal(t, "PAY|4400 4300 1234 5678|44500|order_ORD-240709-1234", payload)
}

func TestPNGEncoderProducesPNG(t *testing.T) {
	png, err := PNGEncoder{}.Encode("PAY|card|100|order_X", 128)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
