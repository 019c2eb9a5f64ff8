// Package store owns the ordered sequence of bookings and its persisted form.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"villa/internal/domains/booking/model"
	"villa/internal/domains/booking/repository"

	"github.com/rs/zerolog/log"
)

// StateVersion is written into every persisted state.
const StateVersion = 1

// ErrUnsupportedVersion means the state was written by a newer release. It is
// not treated as malformed because discarding it would lose real bookings.
var ErrUnsupportedVersion = errors.New("unsupported booking state version")

type state struct {
	Version  int             `json:"version"`
	Bookings []model.Booking `json:"bookings"`
}

// Store is safe for concurrent use. It does not validate what is appended and
// it does not serialize check-then-append sequences; callers that need that
// hold their own lock around the whole sequence.
type Store struct {
	mu       sync.RWMutex
	backend  repository.Backend
	bookings []model.Booking
}

func New(backend repository.Backend) *Store {
	return &Store{
		backend:  backend,
		bookings: []model.Booking{},
	}
}

// NewLoaded builds a store and loads the persisted state once.
func NewLoaded(ctx context.Context, backend repository.Backend) (*Store, error) {
	s := New(backend)

	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Load replaces the in-memory sequence with the persisted one. Missing or
// undecodable state yields an empty sequence. A failed read is returned and
// leaves the current sequence untouched, so a later Persist cannot clobber
// data that was never seen. The same holds for state from a newer version.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.backend.Read(ctx)
	if errors.Is(err, repository.ErrStateNotFound) {
		s.replace([]model.Booking{})

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to load bookings from %s: %w", s.backend.Name(), err)
	}

	bookings, err := decode(raw)
	if errors.Is(err, ErrUnsupportedVersion) {
		return fmt.Errorf("failed to load bookings from %s: %w", s.backend.Name(), err)
	}

	if err != nil {
		log.Error().
			Err(err).
			Str("backend", s.backend.Name()).
			Int("bytes", len(raw)).
			Msg("malformed booking state, starting with no bookings")

		s.replace([]model.Booking{})

		return nil
	}

	s.replace(bookings)

	log.Debug().Str("backend", s.backend.Name()).Int("bookings", len(bookings)).Msg("bookings loaded")

	return nil
}

// Append adds booking to the end of the sequence.
func (s *Store) Append(booking model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, booking)
}

// Persist overwrites the stored state with the whole sequence.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.RLock()
	raw, err := json.Marshal(state{Version: StateVersion, Bookings: s.bookings})
	s.mu.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	if err = s.backend.Write(ctx, raw); err != nil {
		return fmt.Errorf("failed to persist bookings to %s: %w", s.backend.Name(), err)
	}

	return nil
}

// All returns a copy of the sequence in insertion order.
func (s *Store) All() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.bookings)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookings)
}

// Truncate drops everything after the first n bookings.
func (s *Store) Truncate(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n >= 0 && n < len(s.bookings) {
		s.bookings = s.bookings[:n:n]
	}
}

func (s *Store) replace(bookings []model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = bookings
}

// decode accepts the versioned layout and the bare array written before
// versioning existed.
func decode(raw []byte) ([]model.Booking, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty booking state")
	}

	if trimmed[0] == '[' {
		var bookings []model.Booking
		if err := json.Unmarshal(trimmed, &bookings); err != nil {
			return nil, fmt.Errorf("failed to decode legacy booking list: %w", err)
		}

		return nonNil(bookings), nil
	}

	var decoded state
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode booking state: %w", err)
	}

	if decoded.Version > StateVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, decoded.Version)
	}

	return nonNil(decoded.Bookings), nil
}

func nonNil(bookings []model.Booking) []model.Booking {
	if bookings == nil {
		return []model.Booking{}
	}

	return bookings
}
