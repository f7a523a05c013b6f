package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeRepo struct {
	items     []*domain.Availability
	nextID    int64
	createErr error
	deleted   []int64
}

func (r *fakeRepo) Create(_ context.Context, a *domain.Availability) (*domain.Availability, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	a.ID = r.nextID
	r.items = append(r.items, a)
	return a, nil
}

func (r *fakeRepo) ListByHost(_ context.Context, hostID int64) ([]*domain.Availability, error) {
	var out []*domain.Availability
	for _, a := range r.items {
		if a.HostID == hostID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteByHost(_ context.Context, hostID int64) error {
	kept := r.items[:0]
	for _, a := range r.items {
		if a.HostID != hostID {
			kept = append(kept, a)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, hostID, id int64) error {
	for i, a := range r.items {
		if a.ID == id && a.HostID == hostID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return availabilityRepo.ErrAvailabilityNotFound
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func TestCreateAndList(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeTx{}, logger.NewNop())

	resp, err := svc.Create(context.Background(), &models.CreateAvailabilityRequest{
		HostID:   1,
		Schedule: models.Schedule{DayOfWeek: 2, StartTime: "09:30", EndTime: "24:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "09:30", resp.StartTime.String())
	assert.Equal(t, "24:00", resp.EndTime.String())
	assert.Equal(t, 9*60+30, repo.items[0].StartMinute)
	assert.Equal(t, domain.MinutesPerDay, repo.items[0].EndMinute)

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list.Availability, 1)
	assert.True(t, list.Availability[0].IsActive)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name     string
		schedule models.Schedule
	}{
		{"day out of range", models.Schedule{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}},
		{"start after end", models.Schedule{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}},
		{"empty window", models.Schedule{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}},
		{"bad format", models.Schedule{DayOfWeek: 1, StartTime: "9h", EndTime: "17:00"}},
		{"past midnight", models.Schedule{DayOfWeek: 1, StartTime: "09:00", EndTime: "24:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{}, &fakeTx{}, logger.NewNop())

			_, err := svc.Create(context.Background(), &models.CreateAvailabilityRequest{HostID: 1, Schedule: tt.schedule})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestReplace(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTx{}
	svc := NewService(repo, tx, logger.NewNop())

	for _, w := range domain.DefaultWeeklyAvailability(1) {
		_, _ = repo.Create(context.Background(), w)
	}
	_, _ = repo.Create(context.Background(), &domain.Availability{HostID: 2, DayOfWeek: 1, StartMinute: 0, EndMinute: 60})

	resp, err := svc.Replace(context.Background(), &models.ReplaceAvailabilityRequest{
		HostID: 1,
		Schedules: []models.Schedule{
			{DayOfWeek: 6, StartTime: "10:00", EndTime: "12:00"},
			{DayOfWeek: 6, StartTime: "14:00", EndTime: "18:00"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Availability, 2)
	assert.Equal(t, 1, tx.calls)

	own, _ := repo.ListByHost(context.Background(), 1)
	assert.Len(t, own, 2)
	other, _ := repo.ListByHost(context.Background(), 2)
	assert.Len(t, other, 1)
}

func TestReplace_InvalidLeavesScheduleUntouched(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTx{}
	svc := NewService(repo, tx, logger.NewNop())
	_, _ = repo.Create(context.Background(), &domain.Availability{HostID: 1, DayOfWeek: 1, StartMinute: 540, EndMinute: 1020})

	_, err := svc.Replace(context.Background(), &models.ReplaceAvailabilityRequest{
		HostID:    1,
		Schedules: []models.Schedule{{DayOfWeek: 1, StartTime: "12:00", EndTime: "11:00"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, tx.calls)
	assert.Len(t, repo.items, 1)
}

func TestReplace_RepositoryError(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("db down")}
	svc := NewService(repo, &fakeTx{}, logger.NewNop())

	_, err := svc.Replace(context.Background(), &models.ReplaceAvailabilityRequest{
		HostID:    1,
		Schedules: []models.Schedule{{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"}},
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeTx{}, logger.NewNop())
	_, _ = repo.Create(context.Background(), &domain.Availability{HostID: 1, DayOfWeek: 1, StartMinute: 540, EndMinute: 1020})

	assert.ErrorIs(t, svc.Delete(context.Background(), 2, 1), ErrAvailabilityNotFound)
	require.NoError(t, svc.Delete(context.Background(), 1, 1))
	assert.Equal(t, []int64{1}, repo.deleted)
}
