// Package storage persists run reports so failures and staged fixtures
// can be inspected after the run (failures and review commands).
package storage

import (
	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/domain"
)

// Storage persists and loads harness run reports.
type Storage interface {
	Save(report *domain.RunReport) error
	Load() (*domain.RunReport, error)
}

// JSONStorage stores reports as a JSON file inside the project directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage backed by the config's report path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
