package metrics

// Noop реализация доменных счетчиков для режима без метрик
type Noop struct{}

func (Noop) SlotsReturned(string, int)          {}
func (Noop) BookingCreated(string)              {}
func (Noop) BookingConflict(string)             {}
func (Noop) NotificationEnqueued(string, error) {}

// Recorder доменные счетчики, общие для Metrics и Noop
type Recorder interface {
	SlotsReturned(eventSlug string, count int)
	BookingCreated(status string)
	BookingConflict(stage string)
	NotificationEnqueued(taskType string, err error)
}

var (
	_ Recorder = (*Metrics)(nil)
	_ Recorder = Noop{}
)
