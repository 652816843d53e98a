package repository

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) si el cliente no existe; el caso de uso decide
// si eso es un error.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}
