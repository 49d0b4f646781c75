package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricingVenue() *Venue {
	return &Venue{
		ID:                 1,
		Name:               "Test Brasserie",
		PartySizes:         []PartySize{2, 4, 5, 8, 20},
		NonPrimeFeePerHead: 1500,
		PrimeBasePrice:     30000,
		PrimeBaseCovers:    5,
		PrimeExtraGuestFee: 6000,
	}
}

func TestVenue_QuoteFee(t *testing.T) {
	venue := testPricingVenue()

	tests := []struct {
		name  string
		prime bool
		size  PartySize
		want  int64
	}{
		{name: "non-prime per head", prime: false, size: 4, want: 6000},
		{name: "non-prime pair", prime: false, size: 2, want: 3000},
		{name: "prime base exactly covers party", prime: true, size: 5, want: 30000},
		{name: "prime smaller than covered still pays base", prime: true, size: 2, want: 30000},
		{name: "prime three extra guests", prime: true, size: 8, want: 48000},
		{name: "prime large party", prime: true, size: 20, want: 120000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := venue.QuoteFee(tt.prime, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fee)
		})
	}
}

func TestVenue_QuoteFee_NotOffered(t *testing.T) {
	venue := testPricingVenue()

	_, err := venue.QuoteFee(false, 3)
	assert.ErrorIs(t, err, ErrPartySizeNotOffered)

	// Special Request никогда не является частью каталога
	_, err = venue.QuoteFee(true, PartySizeSpecialRequest)
	assert.ErrorIs(t, err, ErrPartySizeNotOffered)
}
