// internal/storage/storage.go
package storage

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go

import (
	"context"
	"errors"

	"posyandu/internal/models"
)

var ErrPosyanduNotFound = errors.New("posyandu not found")

type PosyanduStorage interface {
	Create(ctx context.Context, posyandu *models.Posyandu) (*models.Posyandu, error)
	GetByID(ctx context.Context, id int) (*models.Posyandu, error)
	// List returns one page of matches and the total number of matches.
	List(ctx context.Context, filter *models.PosyanduFilter, pagination *models.Pagination) ([]models.Posyandu, int, error)
	Update(ctx context.Context, posyandu *models.Posyandu) (*models.Posyandu, error)
	Delete(ctx context.Context, id int) error
}
