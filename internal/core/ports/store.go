package ports

import "go.trai.ch/ngpack/internal/core/domain"

// PackageRecordStore persists the summary of the last successful run per output root.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PackageRecordStore interface {
	// Get retrieves the record for an output root.
	// Returns nil, nil if not found.
	Get(outputRoot string) (*domain.PackageRecord, error)

	// Put stores the record.
	Put(record domain.PackageRecord) error
}
