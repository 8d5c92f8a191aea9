package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tuka1911/dymokminiapp/models"
)

func TestFeeForZone(t *testing.T) {
	assert.Equal(t, models.Fee{Amount: 1500}, FeeForZone(ZoneNear))
	assert.Equal(t, models.Fee{Amount: 2500}, FeeForZone(ZoneCity))
}

func TestOutsideZoneIsManualQuoteNotZero(t *testing.T) {
	fee := FeeForZone(ZoneOutside)

	assert.True(t, fee.ManualQuote)
	assert.Zero(t, fee.Amount)
	assert.NotEqual(t, models.Fee{}, fee, "manual quote is distinct from a plain zero fee")
}

func TestParseZone(t *testing.T) {
	z, err := ParseZone("CITY")
	require.NoError(t, err)
	assert.Equal(t, ZoneCity, z)

	z, err = ParseZone(" near ")
	require.NoError(t, err)
	assert.Equal(t, ZoneNear, z)

	_, err = ParseZone("moon")
	assert.Error(t, err)
}
