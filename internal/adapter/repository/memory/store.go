package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type dayKey struct {
	roomTypeID uuid.UUID
	date       string
}

func keyOf(roomTypeID uuid.UUID, date string) dayKey {
	return dayKey{roomTypeID: roomTypeID, date: date}
}

// transaction writes through to the maps and keeps an undo log. Locks taken inside it are held
// until it ends, which gives the same per-row serialization as SELECT ... FOR UPDATE.
type transaction struct {
	held map[string]struct{}
	keys []string
	undo []func()
}

// Store is a process-local implementation of every repository port.
type Store struct {
	mu                sync.Mutex
	roomTypes         map[uuid.UUID]domain.RoomType
	days              map[dayKey]domain.InventoryDay
	bookings          map[uuid.UUID]domain.Booking
	locators          map[string]uuid.UUID
	contracts         map[uuid.UUID]domain.StayContract
	contractByBooking map[uuid.UUID]uuid.UUID
	locks             *lockTable
}

func New() *Store {
	return &Store{
		roomTypes:         make(map[uuid.UUID]domain.RoomType),
		days:              make(map[dayKey]domain.InventoryDay),
		bookings:          make(map[uuid.UUID]domain.Booking),
		locators:          make(map[string]uuid.UUID),
		contracts:         make(map[uuid.UUID]domain.StayContract),
		contractByBooking: make(map[uuid.UUID]uuid.UUID),
		locks:             newLockTable(),
	}
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := transactionFromContext(ctx); ok {
		return fn(ctx)
	}

	trx := &transaction{held: make(map[string]struct{})}

	defer func() {
		if p := recover(); p != nil {
			s.rollback(trx)
			s.release(trx)

			panic(p)
		}

		if err != nil {
			s.rollback(trx)
		}

		s.release(trx)
	}()

	return fn(withTransaction(ctx, trx))
}

func (s *Store) rollback(trx *transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(trx.undo) - 1; i >= 0; i-- {
		trx.undo[i]()
	}

	trx.undo = nil
}

func (s *Store) release(trx *transaction) {
	for i := len(trx.keys) - 1; i >= 0; i-- {
		s.locks.release(trx.keys[i])
	}

	trx.keys = nil
	trx.held = nil
}

// lock takes key for the rest of the surrounding transaction. Outside a transaction it is a no-op.
func (s *Store) lock(ctx context.Context, key string) error {
	trx, ok := transactionFromContext(ctx)
	if !ok {
		return nil
	}

	if _, held := trx.held[key]; held {
		return nil
	}

	if err := s.locks.acquire(ctx, key); err != nil {
		return fmt.Errorf("lock %s: %w", key, err)
	}

	trx.held[key] = struct{}{}
	trx.keys = append(trx.keys, key)

	return nil
}

// onRollback registers an undo step. Callers hold s.mu.
func (s *Store) onRollback(ctx context.Context, undo func()) {
	if trx, ok := transactionFromContext(ctx); ok {
		trx.undo = append(trx.undo, undo)
	}
}

type lockTable struct {
	mu   sync.Mutex
	sems map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{sems: make(map[string]chan struct{})}
}

func (t *lockTable) sem(key string) chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	sem, ok := t.sems[key]
	if !ok {
		sem = make(chan struct{}, 1)
		t.sems[key] = sem
	}

	return sem
}

func (t *lockTable) acquire(ctx context.Context, key string) error {
	select {
	case t.sem(key) <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", domain.ErrTransientStore, ctx.Err())
	}
}

func (t *lockTable) release(key string) {
	<-t.sem(key)
}
