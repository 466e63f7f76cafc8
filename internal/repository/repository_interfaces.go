// Package repository provides persistence for the ledger snapshot.
package repository

import (
	"context"

	"github.com/guttosm/pizzeria-stock/internal/domain/model"
)

// SnapshotRepository abstracts the backing store for the whole ledger.
// The store holds exactly one snapshot; there is no per-entity access.
type SnapshotRepository interface {
	// Load reads the persisted snapshot. A store that has never been
	// written returns an empty snapshot, not an error.
	Load(ctx context.Context) (model.Snapshot, error)

	// Save persists the snapshot, replacing whatever was stored before.
	// The write must be atomic: a crash mid-save must leave either the
	// previous or the new state on disk, never a partial document.
	Save(ctx context.Context, snap model.Snapshot) error
}
