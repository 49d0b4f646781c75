package duplicate_schedule

import (
	"context"

	duplicateSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/duplicate_schedule"
)

type DuplicateScheduleUseCase interface {
	Execute(ctx context.Context, req *duplicateSchedule.Request) (*duplicateSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
