package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx}
}

// Create crea un nuevo cliente. userId, firstName, lastName y email son
// obligatorios; el email es único a nivel global (la violación llega del
// repositorio como domain.ErrDuplicate).
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if blank(in.UserID) || blank(in.FirstName) || blank(in.LastName) || blank(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// ListByUser lista los clientes del usuario en orden de inserción.
func (uc *CustomerUseCase) ListByUser(ctx context.Context, userID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Delete elimina un cliente y, en cascada, todas sus facturas.
//
// Secuencia dentro de una misma unidad de trabajo: primero se resuelve el
// cliente (si no existe se aborta con domain.ErrNotFound sin tocar
// facturas), luego se borra el cliente y por último todas las facturas que
// lo referencian. Tras un retorno exitoso ninguna factura del cliente es
// recuperable.
func (uc *CustomerUseCase) Delete(ctx context.Context, customerID string) (*dto.DeleteCustomerResponse, error) {
	var deleted *entity.Customer
	var billCount int64

	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, bills repository.BillRepository) error {
		c, err := customers.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if err := customers.Delete(ctx, customerID); err != nil {
			return err
		}
		n, err := bills.DeleteByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		deleted = c
		billCount = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeleteCustomerResponse{
		Message:           "Customer and related bills deleted successfully",
		DeletedCustomer:   toCustomerResponse(deleted),
		DeletedBillsCount: billCount,
	}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
