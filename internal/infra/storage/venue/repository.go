package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заведениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заведений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var venueColumns = []string{
	"id",
	"name",
	"timezone",
	"party_sizes",
	"allow_special_request",
	"non_prime_fee_per_head",
	"prime_base_price",
	"prime_base_covers",
	"prime_extra_guest_fee",
	"cutoff_minutes",
	"open_time",
	"close_time",
	"open_days",
	"created_at",
	"updated_at",
}

// Create создает новое заведение
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venues").
		Columns(
			"name",
			"timezone",
			"party_sizes",
			"allow_special_request",
			"non_prime_fee_per_head",
			"prime_base_price",
			"prime_base_covers",
			"prime_extra_guest_fee",
			"cutoff_minutes",
			"open_time",
			"close_time",
			"open_days",
		).
		Values(
			v.Name,
			v.Timezone,
			pq.Array(partySizesToInts(v.PartySizes)),
			v.AllowSpecialRequest,
			v.NonPrimeFeePerHead,
			v.PrimeBasePrice,
			int(v.PrimeBaseCovers),
			v.PrimeExtraGuestFee,
			v.CutoffMinutes,
			v.OpenTime,
			v.CloseTime,
			pq.Array(v.OpenDays[:]),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает заведение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Venue
	var createdAt, updatedAt sql.NullTime
	var sizes pq.Int64Array
	var openDays pq.BoolArray
	var primeBaseCovers int

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.Name,
		&v.Timezone,
		&sizes,
		&v.AllowSpecialRequest,
		&v.NonPrimeFeePerHead,
		&v.PrimeBasePrice,
		&primeBaseCovers,
		&v.PrimeExtraGuestFee,
		&v.CutoffMinutes,
		&v.OpenTime,
		&v.CloseTime,
		&openDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	v.PartySizes = intsToPartySizes(sizes)
	v.PrimeBaseCovers = domain.PartySize(primeBaseCovers)
	for i := 0; i < len(openDays) && i < domain.DaysPerWeek; i++ {
		v.OpenDays[i] = openDays[i]
	}
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

func partySizesToInts(sizes []domain.PartySize) []int64 {
	out := make([]int64, len(sizes))
	for i, s := range sizes {
		out[i] = int64(s)
	}
	return out
}

func intsToPartySizes(values pq.Int64Array) []domain.PartySize {
	out := make([]domain.PartySize, len(values))
	for i, v := range values {
		out[i] = domain.PartySize(v)
	}
	return out
}
