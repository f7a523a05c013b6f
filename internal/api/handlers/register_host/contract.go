package register_host

import (
	"context"

	registerHost "github.com/m04kA/SMC-SchedulingService/internal/usecase/register_host"
)

type RegisterHostUseCase interface {
	Execute(ctx context.Context, req *registerHost.Request) (*registerHost.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
