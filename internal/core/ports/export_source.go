package ports

import (
	"context"
	"io"

	"go.trai.ch/endotarter/internal/core/domain"
)

// ExportSource defines the interface for obtaining the nations dump.
//
//go:generate mockgen -source=export_source.go -destination=mocks/mock_export_source.go -package=mocks
type ExportSource interface {
	// Open returns the decompressed dump stream described by loc, fetching it first
	// if it is not present locally. The caller must close the returned reader.
	Open(ctx context.Context, loc domain.ExportLocation) (io.ReadCloser, error)
}
