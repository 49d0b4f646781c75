package update_slot

import (
	"context"

	updateSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_slot"
)

type UpdateSlotUseCase interface {
	Execute(ctx context.Context, req *updateSlot.Request) (*updateSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
