package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// VenueResponse ответ с данными заведения
type VenueResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Timezone            string `json:"timezone"`
	PartySizes          []int  `json:"partySizes"`
	AllowSpecialRequest bool   `json:"allowSpecialRequest"`

	NonPrimeFeePerHead int64 `json:"nonPrimeFeePerHead"`
	PrimeBasePrice     int64 `json:"primeBasePrice"`
	PrimeBaseCovers    int   `json:"primeBaseCovers"`
	PrimeExtraGuestFee int64 `json:"primeExtraGuestFee"`

	CutoffMinutes int    `json:"cutoffMinutes"`
	OpenTime      string `json:"openTime"`
	CloseTime     string `json:"closeTime"`
	OpenDays      []bool `json:"openDays"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	sizes := make([]int, len(v.PartySizes))
	for i, s := range v.PartySizes {
		sizes[i] = int(s)
	}

	return &VenueResponse{
		ID:                  v.ID,
		Name:                v.Name,
		Timezone:            v.Timezone,
		PartySizes:          sizes,
		AllowSpecialRequest: v.AllowSpecialRequest,
		NonPrimeFeePerHead:  v.NonPrimeFeePerHead,
		PrimeBasePrice:      v.PrimeBasePrice,
		PrimeBaseCovers:     int(v.PrimeBaseCovers),
		PrimeExtraGuestFee:  v.PrimeExtraGuestFee,
		CutoffMinutes:       v.CutoffMinutes,
		OpenTime:            string(v.OpenTime),
		CloseTime:           string(v.CloseTime),
		OpenDays:            v.OpenDays[:],
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}
