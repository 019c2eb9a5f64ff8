package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"villa/infras/otel/mocks"
	bookingMocks "villa/internal/domains/booking/mocks"
	"villa/internal/domains/booking/model"
	"villa/internal/domains/booking/repository"
	"villa/internal/domains/booking/store"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleBooking(id string) model.Booking {
	return model.Booking{
		ID:          id,
		Name:        "Asha",
		Email:       "asha@example.com",
		Phone:       "+91 90000 00000",
		Guests:      "2",
		CheckIn:     model.NewDate(2025, time.April, 10),
		CheckOut:    model.NewDate(2025, time.April, 12),
		RoomType:    model.RoomTypeOneBedroom,
		Purpose:     "Family",
		Message:     "Late arrival",
		Status:      model.StatusTentative,
		BookingDate: time.Date(2025, time.March, 1, 10, 20, 30, 0, time.UTC),
	}
}

func TestStore_AppendPersistReload(t *testing.T) {
	backends := map[string]func(t *testing.T) repository.Backend{
		"memory": func(*testing.T) repository.Backend { return repository.NewMemory() },
		"file": func(*testing.T) repository.Backend {
			return repository.NewFile(afero.NewMemMapFs(), "data/bookings.json", mocks.NewOtel())
		},
		"os file": func(t *testing.T) repository.Backend {
			return repository.NewFile(afero.NewOsFs(), t.TempDir()+"/bookings.json", mocks.NewOtel())
		},
	}

	for name, newBackend := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			backend := newBackend(t)

			first, err := store.NewLoaded(ctx, backend)
			require.NoError(t, err)
			assert.Empty(t, first.All())

			existing := sampleBooking("a")
			added := sampleBooking("b")
			added.RoomType = model.RoomTypeFullVilla

			first.Append(existing)
			first.Append(added)
			require.NoError(t, first.Persist(ctx))

			reloaded, err := store.NewLoaded(ctx, backend)
			require.NoError(t, err)

			all := reloaded.All()
			require.Len(t, all, 2)
			assert.Equal(t, added, all[1])
			assert.Equal(t, existing, all[0])
		})
	}
}

func TestStore_PersistedLayoutIsVersioned(t *testing.T) {
	ctx := context.Background()
	backend := repository.NewMemory()

	s := store.New(backend)
	s.Append(sampleBooking("a"))
	require.NoError(t, s.Persist(ctx))

	raw, err := backend.Read(ctx)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.JSONEq(t, `1`, string(decoded["version"]))
	assert.Contains(t, string(decoded["bookings"]), `"checkin":"2025-04-10"`)
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name      string
		state     string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "legacy bare array",
			state:     `[{"name":"Asha","checkin":"2025-04-10","checkout":"2025-04-12","roomtype":"1 Bedroom","bookingDate":"2025-03-01T10:20:30.000Z"}]`,
			wantCount: 1,
		},
		{
			name:      "versioned",
			state:     `{"version":1,"bookings":[{"id":"x","checkin":"2025-04-10","checkout":"2025-04-12","roomtype":"1 Bedroom"}]}`,
			wantCount: 1,
		},
		{
			name:      "versioned without bookings",
			state:     `{"version":1}`,
			wantCount: 0,
		},
		{
			name:      "corrupt json",
			state:     `{"version":1,"bookings":[`,
			wantCount: 0,
		},
		{
			name:      "corrupt date",
			state:     `[{"checkin":"tomorrow","checkout":"2025-04-12"}]`,
			wantCount: 0,
		},
		{
			name:      "blank",
			state:     "   ",
			wantCount: 0,
		},
		{
			name:    "newer version is refused",
			state:   `{"version":2,"bookings":[]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := repository.NewMemory()
			require.NoError(t, backend.Write(ctx, []byte(tt.state)))

			s := store.New(backend)
			s.Append(sampleBooking("in-memory"))

			err := s.Load(ctx)
			if tt.wantErr {
				assert.ErrorIs(t, err, store.ErrUnsupportedVersion)
				assert.Equal(t, 1, s.Len())

				return
			}

			require.NoError(t, err)
			assert.Len(t, s.All(), tt.wantCount)
		})
	}
}

func TestStore_LoadReadFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := bookingMocks.NewMockBackend(ctrl)
	backend.EXPECT().Read(gomock.Any()).Return(nil, errors.New("connection refused"))
	backend.EXPECT().Name().Return("redis").AnyTimes()

	s := store.New(backend)
	s.Append(sampleBooking("a"))

	err := s.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, s.Len())

	_, err = store.NewLoaded(context.Background(), failingReader{})
	assert.Error(t, err)
}

func TestStore_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := bookingMocks.NewMockBackend(ctrl)
	backend.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded"))
	backend.EXPECT().Name().Return("file").AnyTimes()

	s := store.New(backend)
	s.Append(sampleBooking("a"))

	assert.Error(t, s.Persist(context.Background()))
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := store.New(repository.NewMemory())
	s.Append(sampleBooking("a"))

	all := s.All()
	all[0].Name = "changed"

	assert.Equal(t, "Asha", s.All()[0].Name)
}

func TestStore_Truncate(t *testing.T) {
	s := store.New(repository.NewMemory())
	s.Append(sampleBooking("a"))
	s.Append(sampleBooking("b"))
	s.Append(sampleBooking("c"))

	s.Truncate(5)
	assert.Equal(t, 3, s.Len())

	s.Truncate(2)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "b", s.All()[1].ID)

	s.Append(sampleBooking("d"))
	assert.Equal(t, "d", s.All()[2].ID)
}

func TestStore_ConcurrentAppend(t *testing.T) {
	s := store.New(repository.NewMemory())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			s.Append(sampleBooking("x"))
			_ = s.All()
		}()
	}

	wg.Wait()
	assert.Equal(t, 50, s.Len())
}

type failingReader struct{}

func (failingReader) Read(context.Context) ([]byte, error) { return nil, errors.New("disk unreadable") }

func (failingReader) Write(context.Context, []byte) error { return nil }

func (failingReader) Name() string { return "failing" }
