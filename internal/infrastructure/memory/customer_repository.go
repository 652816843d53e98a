// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Es el doble inyectable que usan los tests en lugar de PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo repositorio de clientes en memoria. Conserva el orden de
// inserción y aplica la unicidad del email igual que el índice de Postgres.
type CustomerRepo struct {
	mu    sync.RWMutex
	items []*entity.Customer
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{}
}

// Create agrega un cliente; email repetido devuelve domain.ErrDuplicate.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Email == customer.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *customer
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia del cliente, o (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByUser lista los clientes del usuario en orden de inserción.
func (r *CustomerRepo) ListByUser(_ context.Context, userID string) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Customer
	for _, c := range r.items {
		if c.UserID == userID {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

// Delete elimina un cliente por ID; si no existe no hace nada.
func (r *CustomerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
