package create_venue

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	createVenue "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_venue"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateVenueRequest HTTP request model
type CreateVenueRequest struct {
	Name                string `json:"name"`
	Timezone            string `json:"timezone"`
	PartySizes          []int  `json:"partySizes"`
	AllowSpecialRequest bool   `json:"allowSpecialRequest"`

	NonPrimeFeePerHead int64 `json:"nonPrimeFeePerHead"`
	PrimeBasePrice     int64 `json:"primeBasePrice"`
	PrimeBaseCovers    int   `json:"primeBaseCovers"`
	PrimeExtraGuestFee int64 `json:"primeExtraGuestFee"`

	CutoffMinutes   *int   `json:"cutoffMinutes,omitempty"` // nil = дефолт
	OpenTime        string `json:"openTime"`
	CloseTime       string `json:"closeTime"`
	OpenDays        []bool `json:"openDays"` // 7 флагов, индекс 0 = воскресенье
	DefaultTables   *int   `json:"defaultTables,omitempty"`
	DefaultPrice    int64  `json:"defaultPrice"`
	DefaultMinSpend int64  `json:"defaultMinSpend"`
}

// CreateVenueResponse HTTP response model
type CreateVenueResponse struct {
	VenueID          int64     `json:"venueId"`
	TemplateRowCount int       `json:"templateRowCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateVenueRequest) ToUseCaseRequest(userID int64) (*createVenue.Request, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("openTime: %w", err)
	}

	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("closeTime: %w", err)
	}

	if len(r.OpenDays) != domain.DaysPerWeek {
		return nil, fmt.Errorf("openDays must contain exactly %d flags", domain.DaysPerWeek)
	}
	var openDays domain.OpenDays
	copy(openDays[:], r.OpenDays)

	sizes := make([]domain.PartySize, len(r.PartySizes))
	for i, s := range r.PartySizes {
		sizes[i] = domain.PartySize(s)
	}

	cutoff := domain.DefaultCutoffMinutes
	if r.CutoffMinutes != nil {
		cutoff = *r.CutoffMinutes
	}

	tables := domain.DefaultAvailableTables
	if r.DefaultTables != nil {
		tables = *r.DefaultTables
	}

	return &createVenue.Request{
		UserID:              userID,
		Name:                r.Name,
		Timezone:            r.Timezone,
		PartySizes:          sizes,
		AllowSpecialRequest: r.AllowSpecialRequest,
		NonPrimeFeePerHead:  r.NonPrimeFeePerHead,
		PrimeBasePrice:      r.PrimeBasePrice,
		PrimeBaseCovers:     domain.PartySize(r.PrimeBaseCovers),
		PrimeExtraGuestFee:  r.PrimeExtraGuestFee,
		CutoffMinutes:       cutoff,
		OpenTime:            openTime,
		CloseTime:           closeTime,
		OpenDays:            openDays,
		DefaultTables:       tables,
		DefaultPrice:        r.DefaultPrice,
		DefaultMinSpend:     r.DefaultMinSpend,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createVenue.Response) *CreateVenueResponse {
	return &CreateVenueResponse{
		VenueID:          resp.VenueID,
		TemplateRowCount: resp.TemplateRowCount,
		CreatedAt:        resp.CreatedAt,
	}
}
