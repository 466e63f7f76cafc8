// Package app provides flat-file store initialization.
package app

import (
	"github.com/guttosm/pizzeria-stock/config"
	"github.com/guttosm/pizzeria-stock/internal/repository"
)

// InitializeStore creates the flat-file snapshot store.
func InitializeStore(cfg config.StoreConfig) *repository.FileStore {
	return repository.NewFileStore(cfg.Path)
}
