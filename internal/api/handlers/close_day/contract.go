package close_day

import (
	"context"

	closeDay "github.com/m04kA/SMC-ScheduleService/internal/usecase/close_day"
)

type CloseDayUseCase interface {
	Execute(ctx context.Context, req *closeDay.Request) (*closeDay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
