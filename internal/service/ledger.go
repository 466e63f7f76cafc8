package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/pizzeria-stock/internal/domain/model"
	"github.com/guttosm/pizzeria-stock/internal/repository"
)

// Ledger defines the mutating and reading operations on the stock ledger.
type Ledger interface {
	// RecordDelivery validates, annotates and appends a delivery event.
	// Over-delivery never rejects the event; it is returned as overflow
	// flags on the created event so the caller can warn the operator.
	RecordDelivery(ctx context.Context, day model.Day, recipient, note string, items map[model.Flavor]int) (model.DeliveryEvent, error)

	// DeleteDelivery removes the event with the given id. It reports
	// whether anything was removed; a missing id is not an error.
	DeleteDelivery(ctx context.Context, id int) (bool, error)

	// SetOrdered overwrites the ordered quantity for one flavor/day cell.
	SetOrdered(ctx context.Context, flavor model.Flavor, day model.Day, quantity int) error

	// Replace swaps the entire ledger state for the given snapshot.
	// Full overwrite, no merge.
	Replace(ctx context.Context, snap model.Snapshot) error

	// Clear resets both collections to empty.
	Clear(ctx context.Context) error

	// Snapshot returns a deep copy of the current state.
	Snapshot() model.Snapshot

	// Catalog returns the fixed flavor/day catalog.
	Catalog() model.Catalog
}

// LedgerService implements Ledger on top of a snapshot repository.
//
// A single mutex serializes every mutation's read-modify-write-persist
// cycle. Mutations work on a copy of the state and commit it in memory
// only after the repository save succeeds, so a persistence failure
// leaves the prior state intact.
type LedgerService struct {
	mu      sync.Mutex
	catalog model.Catalog
	repo    repository.SnapshotRepository
	state   model.Snapshot
	now     func() time.Time
}

// LedgerOption configures a LedgerService.
type LedgerOption func(*LedgerService)

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *LedgerService) {
		s.now = now
	}
}

// NewLedgerService loads the persisted snapshot and returns a ready
// ledger. A load failure aborts startup; the caller decides whether to
// continue without state.
func NewLedgerService(ctx context.Context, catalog model.Catalog, repo repository.SnapshotRepository, opts ...LedgerOption) (*LedgerService, error) {
	snap, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	s := &LedgerService{
		catalog: catalog,
		repo:    repo,
		state:   snap,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	log.Info().
		Int("deliveries", len(snap.Deliveries)).
		Int("order_rows", len(snap.Orders)).
		Msg("Ledger loaded")
	return s, nil
}

// Catalog returns the fixed flavor/day catalog.
func (s *LedgerService) Catalog() model.Catalog {
	return s.catalog
}

// Snapshot returns a deep copy of the current ledger state.
func (s *LedgerService) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// RecordDelivery validates the input, computes overflow flags against the
// pre-insertion state, appends the event and persists the new state.
func (s *LedgerService) RecordDelivery(ctx context.Context, day model.Day, recipient, note string, items map[model.Flavor]int) (model.DeliveryEvent, error) {
	if !s.catalog.HasDay(day) {
		return model.DeliveryEvent{}, model.ErrUnknownDay(day)
	}

	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return model.DeliveryEvent{}, model.ErrEmptyRecipient
	}

	kept := make(map[model.Flavor]int, len(items))
	total := 0
	for f, q := range items {
		if !s.catalog.HasFlavor(f) {
			return model.DeliveryEvent{}, model.ErrUnknownFlavor(f)
		}
		if q < 0 {
			return model.DeliveryEvent{}, model.ErrNegativeQuantity
		}
		if q == 0 {
			continue
		}
		kept[f] = q
		total += q
	}
	if total == 0 {
		return model.DeliveryEvent{}, model.ErrEmptyDelivery
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := model.DeliveryEvent{
		ID:         s.state.NextDeliveryID(),
		Day:        day,
		Recipient:  recipient,
		Note:       strings.TrimSpace(note),
		Items:      kept,
		Total:      total,
		RecordedAt: s.now(),
	}

	// Overflow is relative to the stock situation right now; the flags
	// stay on the event even if the order table changes later.
	for _, f := range s.catalog.Flavors() {
		q, ok := kept[f]
		if !ok {
			continue
		}
		remaining := RemainingFor(s.state, f, day)
		if q > remaining {
			event.Overflow = append(event.Overflow, model.OverflowFlag{
				Flavor:  f,
				Ordered: OrderedFor(s.state, f, day),
				Excess:  q - remaining,
			})
		}
	}
	event.HasOverflow = len(event.Overflow) > 0

	next := s.state.Clone()
	next.Deliveries = append(next.Deliveries, event.Clone())

	if err := s.repo.Save(ctx, next); err != nil {
		return model.DeliveryEvent{}, fmt.Errorf("persist delivery: %w", err)
	}
	s.state = next

	log.Info().
		Int("id", event.ID).
		Str("day", string(day)).
		Int("total", total).
		Bool("has_overflow", event.HasOverflow).
		Msg("Delivery recorded")
	return event, nil
}

// DeleteDelivery removes the event with the given id, if present.
// Surviving events keep their ids.
func (s *LedgerService) DeleteDelivery(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.state.Deliveries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	next := s.state.Clone()
	next.Deliveries = append(next.Deliveries[:idx], next.Deliveries[idx+1:]...)

	if err := s.repo.Save(ctx, next); err != nil {
		return false, fmt.Errorf("persist delete: %w", err)
	}
	s.state = next

	log.Info().Int("id", id).Msg("Delivery deleted")
	return true, nil
}

// SetOrdered overwrites the ordered quantity for one cell. Overflow flags
// on already-recorded deliveries are deliberately left untouched.
func (s *LedgerService) SetOrdered(ctx context.Context, flavor model.Flavor, day model.Day, quantity int) error {
	if !s.catalog.HasFlavor(flavor) {
		return model.ErrUnknownFlavor(flavor)
	}
	if !s.catalog.HasDay(day) {
		return model.ErrUnknownDay(day)
	}
	if quantity < 0 {
		return model.ErrNegativeQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	next.Orders.Set(flavor, day, quantity)

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("persist order table: %w", err)
	}
	s.state = next
	return nil
}

// Replace swaps the whole ledger state for the imported snapshot and
// persists it. Nothing changes when the save fails.
func (s *LedgerService) Replace(ctx context.Context, snap model.Snapshot) error {
	next := snap.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("persist import: %w", err)
	}
	s.state = next

	log.Info().
		Int("deliveries", len(next.Deliveries)).
		Int("order_rows", len(next.Orders)).
		Msg("Ledger replaced from import")
	return nil
}

// Clear resets the ledger to empty collections and persists the result.
func (s *LedgerService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := model.EmptySnapshot()
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("persist clear: %w", err)
	}
	s.state = next

	log.Info().Msg("Ledger cleared")
	return nil
}
