package repository

import (
	"context"

	"cleanbite/internal/domain/entity"
)

// EstablishmentRepository exposes the loaded establishment set.
// The set is read-only; implementations load it once.
type EstablishmentRepository interface {
	// All returns every establishment in source order.
	All(ctx context.Context) ([]entity.Establishment, error)

	// FindByID returns ErrEstablishmentNotFound when the id is unknown.
	FindByID(ctx context.Context, id string) (*entity.Establishment, error)

	// BusinessTypes returns the distinct business types in first-seen order.
	BusinessTypes(ctx context.Context) ([]string, error)
}
