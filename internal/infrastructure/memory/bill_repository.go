package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo repositorio de facturas en memoria, en orden de inserción.
type BillRepo struct {
	mu    sync.RWMutex
	items []*entity.Bill
}

// NewBillRepository construye el repositorio vacío.
func NewBillRepository() *BillRepo {
	return &BillRepo{}
}

// Create agrega una factura.
func (r *BillRepo) Create(_ context.Context, bill *entity.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *bill
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia de la factura, o (nil, nil) si no existe.
func (r *BillRepo) GetByID(_ context.Context, id string) (*entity.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.items {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByCustomer lista las facturas que referencian al cliente.
func (r *BillRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Bill, error) {
	return r.filter(func(b *entity.Bill) bool { return b.CustomerID == customerID }), nil
}

// ListByUser lista todas las facturas del usuario.
func (r *BillRepo) ListByUser(_ context.Context, userID string) ([]*entity.Bill, error) {
	return r.filter(func(b *entity.Bill) bool { return b.UserID == userID }), nil
}

// Update reemplaza la factura almacenada con el mismo ID.
func (r *BillRepo) Update(_ context.Context, bill *entity.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.items {
		if b.ID == bill.ID {
			cp := *bill
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// Delete elimina una factura por ID; si no existe no hace nada.
func (r *BillRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.items {
		if b.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteByCustomer elimina todas las facturas del cliente. Devuelve 0 sin
// error si no hay coincidencias.
func (r *BillRepo) DeleteByCustomer(_ context.Context, customerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*entity.Bill
	var deleted int64
	for _, b := range r.items {
		if b.CustomerID == customerID {
			deleted++
			continue
		}
		kept = append(kept, b)
	}
	r.items = kept
	return deleted, nil
}

func (r *BillRepo) filter(match func(*entity.Bill) bool) []*entity.Bill {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Bill
	for _, b := range r.items {
		if match(b) {
			cp := *b
			list = append(list, &cp)
		}
	}
	return list
}
