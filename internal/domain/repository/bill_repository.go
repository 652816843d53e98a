package repository

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para Bill.
// GetByID devuelve (nil, nil) si la factura no existe.
// DeleteByCustomer es idempotente: devuelve 0 si no hay coincidencias.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id string) (*entity.Bill, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Bill, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	Delete(ctx context.Context, id string) error
	DeleteByCustomer(ctx context.Context, customerID string) (int64, error)
}
