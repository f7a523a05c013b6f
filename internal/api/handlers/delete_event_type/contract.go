package delete_event_type

import "context"

type EventTypeService interface {
	Delete(ctx context.Context, hostID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
