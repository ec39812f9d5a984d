package employee

import (
	"context"

	gerrors "github.com/go-faster/errors"
)

var (
	ErrNotFound      = gerrors.New("employee not found")
	ErrDuplicateCode = gerrors.New("duplicate employee code")
)

type Repository interface {
	// Create stores a record and returns the stored copy carrying its
	// registry-assigned RecordID. Codes are unique, case-sensitively.
	Create(ctx context.Context, rec Record) (Record, error)
	// GetAll returns records in insertion order.
	GetAll(ctx context.Context) ([]Record, error)
	GetByCode(ctx context.Context, code string) (Record, error)
	Exists(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
