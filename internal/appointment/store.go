package appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackgods/appointment-store/internal/storage"
)

// DefaultStorageKey is the key the web client has always used.
const DefaultStorageKey = "appointments"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrStoreBusy           = errors.New("appointment store is busy, please retry")
)

// Store owns the appointment collection held under a single backend key.
// Every write rewrites the whole collection.
type Store struct {
	backend storage.Backend
	locker  storage.Locker
	key     string
	log     *zap.Logger
	now     func() time.Time

	mu     sync.Mutex
	lastTS time.Time
}

type Option func(*Store)

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithStorageKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func NewStore(backend storage.Backend, locker storage.Locker, log *zap.Logger, opts ...Option) *Store {
	if locker == nil {
		locker = storage.NewLocalLocker()
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{
		backend: backend,
		locker:  locker,
		key:     DefaultStorageKey,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key the collection lives under.
func (s *Store) Key() string {
	return s.key
}

// Create assigns an ID and creation time, appends the record and persists
// the collection. An empty status means pending.
func (s *Store) Create(ctx context.Context, in NewAppointment) (*Appointment, error) {
	if in.Status == "" {
		in.Status = StatusPending
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}

	var created Appointment

	err := s.mutate(ctx, func(appts []Appointment) ([]Appointment, error) {
		created = in.toAppointment(uuid.NewString(), s.nextTimestamp())
		return append(appts, created), nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("appointment created",
		zap.String("appointment_id", created.ID),
		zap.String("doctor_id", created.DoctorID),
		zap.String("user_id", created.UserID),
		zap.String("status", string(created.Status)),
	)

	return &created, nil
}

// List returns the full collection in stored order.
func (s *Store) List(ctx context.Context) ([]Appointment, error) {
	return s.load(ctx)
}

func (s *Store) ListByDoctor(ctx context.Context, doctorID string) ([]Appointment, error) {
	return s.filter(ctx, func(a Appointment) bool { return a.DoctorID == doctorID })
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	return s.filter(ctx, func(a Appointment) bool { return a.UserID == userID })
}

func (s *Store) Get(ctx context.Context, id string) (*Appointment, error) {
	appts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range appts {
		if appts[i].ID == id {
			return &appts[i], nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// UpdateStatus rewrites the status of the first record with the given id.
// Nothing is written when the id is missing.
func (s *Store) UpdateStatus(ctx context.Context, id string, status AppointmentStatus) (*Appointment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var (
		updated Appointment
		from    AppointmentStatus
	)

	err := s.mutate(ctx, func(appts []Appointment) ([]Appointment, error) {
		for i := range appts {
			if appts[i].ID == id {
				from = appts[i].Status
				appts[i].Status = status
				updated = appts[i]
				return appts, nil
			}
		}
		return nil, ErrAppointmentNotFound
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("appointment status updated",
		zap.String("appointment_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(status)),
	)

	return &updated, nil
}

func (s *Store) filter(ctx context.Context, keep func(Appointment) bool) ([]Appointment, error) {
	appts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) load(ctx context.Context) ([]Appointment, error) {
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []Appointment{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.key, err)
	}

	appts, err := DecodeCollection(data)
	if err != nil {
		s.log.Error("stored collection failed validation",
			zap.String("key", s.key),
			zap.Error(err),
		)
		return nil, err
	}
	return appts, nil
}

// mutate runs one read-modify-write cycle under the key lock. fn returning an
// error aborts the cycle without writing.
func (s *Store) mutate(ctx context.Context, fn func([]Appointment) ([]Appointment, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.locker.WithKeyLock(ctx, s.key, func(lockCtx context.Context) error {
		appts, err := s.load(lockCtx)
		if err != nil {
			return err
		}

		next, err := fn(appts)
		if err != nil {
			return err
		}

		data, err := EncodeCollection(next)
		if err != nil {
			return err
		}

		if err := s.backend.Set(lockCtx, s.key, data); err != nil {
			return fmt.Errorf("write %s: %w", s.key, err)
		}
		return nil
	})

	if errors.Is(err, storage.ErrLockNotAcquired) {
		return ErrStoreBusy
	}
	return err
}

// nextTimestamp never goes backwards, even if the wall clock does.
// Callers hold s.mu.
func (s *Store) nextTimestamp() time.Time {
	ts := s.now().UTC().Round(0)
	if ts.Before(s.lastTS) {
		ts = s.lastTS
	}
	s.lastTS = ts
	return ts
}
