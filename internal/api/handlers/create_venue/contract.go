package create_venue

import (
	"context"

	createVenue "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_venue"
)

type CreateVenueUseCase interface {
	Execute(ctx context.Context, req *createVenue.Request) (*createVenue.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
