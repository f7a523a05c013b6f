package register_host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	hostRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/host"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeHosts struct {
	byEmail   map[string]*domain.Host
	usernames map[string]bool
	created   *domain.Host
	createErr error
}

func (f *fakeHosts) Create(_ context.Context, h *domain.Host) (*domain.Host, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c := *h
	c.ID = 5
	f.created = &c
	return &c, nil
}

func (f *fakeHosts) GetByEmail(_ context.Context, email string) (*domain.Host, error) {
	if h, ok := f.byEmail[email]; ok {
		return h, nil
	}
	return nil, hostRepo.ErrHostNotFound
}

func (f *fakeHosts) UsernameExists(_ context.Context, username string) (bool, error) {
	return f.usernames[username], nil
}

type fakeAvailability struct{ created []*domain.Availability }

func (f *fakeAvailability) Create(_ context.Context, a *domain.Availability) (*domain.Availability, error) {
	f.created = append(f.created, a)
	return a, nil
}

type fakeEventTypes struct{ created []*domain.EventType }

func (f *fakeEventTypes) Create(_ context.Context, et *domain.EventType) (*domain.EventType, error) {
	f.created = append(f.created, et)
	return et, nil
}

type fakeHasher struct{ err error }

func (f fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, f.err
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixture struct {
	uc     *UseCase
	hosts  *fakeHosts
	avail  *fakeAvailability
	events *fakeEventTypes
	tx     *fakeTx
}

func newFixture() *fixture {
	f := &fixture{
		hosts:  &fakeHosts{byEmail: map[string]*domain.Host{}, usernames: map[string]bool{}},
		avail:  &fakeAvailability{},
		events: &fakeEventTypes{},
		tx:     &fakeTx{},
	}
	f.uc = NewUseCase(f.hosts, f.avail, f.events, fakeHasher{}, f.tx, logger.NewNop())
	return f
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		Name:     "  Élodie Müller ",
		Email:    " Elodie@Example.COM ",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Élodie Müller", resp.Name)
	assert.Equal(t, "elodie@example.com", resp.Email)
	assert.Equal(t, "elodie-muller", resp.Username)
	assert.Equal(t, "hashed:secret1", f.hosts.created.PasswordHash)

	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.avail.created, 5)
	for _, a := range f.avail.created {
		assert.Equal(t, int64(5), a.HostID)
		assert.Equal(t, 9*60, a.StartMinute)
		assert.Equal(t, 17*60, a.EndMinute)
	}
	require.Len(t, f.events.created, 1)
	assert.Equal(t, domain.DefaultEventSlug, f.events.created[0].Slug)
}

func TestExecute_UsernameCollision(t *testing.T) {
	f := newFixture()
	f.hosts.usernames["jean-dupont"] = true
	f.hosts.usernames["jean-dupont-1"] = true

	resp, err := f.uc.Execute(context.Background(), &Request{Name: "Jean Dupont", Email: "jean@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jean-dupont-2", resp.Username)
}

func TestExecute_FallbackUsername(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{Name: "!!!", Email: "x@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, fallbackUsername, resp.Username)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name  string
		req   *Request
		setup func(f *fixture)
		want  error
	}{
		{
			name: "missing name",
			req:  &Request{Email: "a@example.com", Password: "secret1"},
			want: ErrInvalidInput,
		},
		{
			name: "bad email",
			req:  &Request{Name: "A", Email: "nope", Password: "secret1"},
			want: ErrInvalidInput,
		},
		{
			name: "short password",
			req:  &Request{Name: "A", Email: "a@example.com", Password: "12345"},
			want: ErrPasswordTooShort,
		},
		{
			name: "email taken",
			req:  &Request{Name: "A", Email: "a@example.com", Password: "secret1"},
			setup: func(f *fixture) {
				f.hosts.byEmail["a@example.com"] = &domain.Host{ID: 1}
			},
			want: ErrEmailTaken,
		},
		{
			name: "email taken concurrently",
			req:  &Request{Name: "A", Email: "a@example.com", Password: "secret1"},
			setup: func(f *fixture) {
				f.hosts.createErr = hostRepo.ErrEmailTaken
			},
			want: ErrEmailTaken,
		},
		{
			name: "repository failure",
			req:  &Request{Name: "A", Email: "a@example.com", Password: "secret1"},
			setup: func(f *fixture) {
				f.hosts.createErr = errors.New("db down")
			},
			want: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, f.avail.created)
		})
	}
}
