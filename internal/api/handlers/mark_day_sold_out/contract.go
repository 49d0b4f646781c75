package mark_day_sold_out

import (
	"context"

	markDaySoldOut "github.com/m04kA/SMC-ScheduleService/internal/usecase/mark_day_sold_out"
)

type MarkDaySoldOutUseCase interface {
	Execute(ctx context.Context, req *markDaySoldOut.Request) (*markDaySoldOut.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
