package make_day_prime

import (
	"context"

	makeDayPrime "github.com/m04kA/SMC-ScheduleService/internal/usecase/make_day_prime"
)

type MakeDayPrimeUseCase interface {
	Execute(ctx context.Context, req *makeDayPrime.Request) (*makeDayPrime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
