package get_available_days

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/eventtype"
	hostRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/host"
	"github.com/m04kA/SMC-SchedulingService/internal/slotengine"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeHosts struct{ host *domain.Host }

func (f *fakeHosts) GetByUsername(_ context.Context, username string) (*domain.Host, error) {
	if f.host == nil || f.host.Username != username {
		return nil, hostRepo.ErrHostNotFound
	}
	return f.host, nil
}

type fakeEventTypes struct{ et *domain.EventType }

func (f *fakeEventTypes) GetActiveBySlug(_ context.Context, hostID int64, slug string) (*domain.EventType, error) {
	if f.et == nil || f.et.HostID != hostID || f.et.Slug != slug {
		return nil, eventTypeRepo.ErrEventTypeNotFound
	}
	return f.et, nil
}

type fakeAvailability struct {
	windows []*domain.Availability
	err     error
}

func (f *fakeAvailability) ListActiveByHost(context.Context, int64) ([]*domain.Availability, error) {
	return f.windows, f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newUseCase(avail *fakeAvailability) *UseCase {
	host := &domain.Host{ID: 1, Username: "alice", Name: "Alice", Timezone: "Europe/Paris"}
	et := domain.DefaultEventType(1)
	et.ID = 10

	uc := NewUseCase(&fakeHosts{host}, &fakeEventTypes{et}, avail,
		schedule.NewPlanner(slotengine.New(), time.UTC), logger.NewNop())
	// Понедельник 3 ноября 2025
	uc.timeProvider = fixedTime{time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_WeekdaysOverHorizon(t *testing.T) {
	uc := newUseCase(&fakeAvailability{windows: domain.DefaultWeeklyAvailability(1)})

	resp, err := uc.Execute(context.Background(), &Request{Username: "alice", EventSlug: domain.DefaultEventSlug})
	require.NoError(t, err)

	// 60 дней от понедельника: 8 полных недель + 4 дня (пн-чт)
	assert.Len(t, resp.AvailableDays, 44)
	assert.Equal(t, "2025-11-03", resp.AvailableDays[0])
	assert.Equal(t, "Alice", resp.Host.Name)
	assert.Equal(t, domain.DefaultEventSlug, resp.EventType.Slug)
	assert.Equal(t, 30, resp.EventType.DurationMinutes)
}

func TestExecute_NoAvailability(t *testing.T) {
	uc := newUseCase(&fakeAvailability{})

	resp, err := uc.Execute(context.Background(), &Request{Username: "alice", EventSlug: domain.DefaultEventSlug})
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableDays)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase(&fakeAvailability{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Username: "", EventSlug: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Username: "bob", EventSlug: domain.DefaultEventSlug})
	assert.ErrorIs(t, err, ErrHostNotFound)

	_, err = uc.Execute(ctx, &Request{Username: "alice", EventSlug: "unknown"})
	assert.ErrorIs(t, err, ErrEventTypeNotFound)

	broken := newUseCase(&fakeAvailability{err: errors.New("db down")})
	_, err = broken.Execute(ctx, &Request{Username: "alice", EventSlug: domain.DefaultEventSlug})
	assert.ErrorIs(t, err, ErrInternal)
}
