package domain

import "errors"

// ErrPartySizeNotOffered возвращается при расчете цены для размера компании,
// которого нет в каталоге заведения (включая Special Request)
var ErrPartySizeNotOffered = errors.New("domain: party size is not offered by the venue")

// QuoteFee computes the booking fee in minor currency units.
//
// Non-prime: NonPrimeFeePerHead × size.
// Prime: PrimeBasePrice covers the first PrimeBaseCovers guests, then
// PrimeExtraGuestFee per additional guest.
//
// All arithmetic is integer; there is no floating point anywhere in pricing.
// Sizes outside the venue's catalog have no computable fee.
func (v *Venue) QuoteFee(prime bool, size PartySize) (int64, error) {
	if !v.OffersPartySize(size) {
		return 0, ErrPartySizeNotOffered
	}

	if !prime {
		return v.NonPrimeFeePerHead * int64(size), nil
	}

	extra := int64(size) - int64(v.PrimeBaseCovers)
	if extra < 0 {
		extra = 0
	}
	return v.PrimeBasePrice + v.PrimeExtraGuestFee*extra, nil
}
