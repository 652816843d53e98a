package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

// BillUseCase casos de uso para facturas.
type BillUseCase struct {
	repo repository.BillRepository
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(repo repository.BillRepository) *BillUseCase {
	return &BillUseCase{repo: repo}
}

// Create crea una factura. userId, customerId, amount y quantity son
// obligatorios; se exige amount >= 0 y quantity > 0. El customerId es una
// referencia blanda: no se comprueba que el cliente exista. Sin status
// explícito la factura nace "unpaid".
func (uc *BillUseCase) Create(ctx context.Context, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	if blank(in.UserID) || blank(in.CustomerID) || in.Amount == nil || in.Quantity == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.BillStatusUnpaid
	}
	if !entity.ValidBillStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	bill := &entity.Bill{
		ID:          uuid.New().String(),
		UserID:      in.UserID,
		CustomerID:  in.CustomerID,
		Amount:      *in.Amount,
		Quantity:    *in.Quantity,
		Description: in.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// ListByCustomer lista las facturas que referencian al cliente.
func (uc *BillUseCase) ListByCustomer(ctx context.Context, customerID string) ([]*dto.BillResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toBillResponses(list), nil
}

// ListByUser lista todas las facturas del usuario (alimenta el dashboard).
func (uc *BillUseCase) ListByUser(ctx context.Context, userID string) ([]*dto.BillResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBillResponses(list), nil
}

// UpdateStatus cambia el estado de una factura. Un estado fuera del dominio
// {unpaid, paid, pending} no muta el registro y devuelve ErrInvalidInput.
func (uc *BillUseCase) UpdateStatus(ctx context.Context, billID, status string) (*dto.BillResponse, error) {
	if !entity.ValidBillStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	bill, err := uc.repo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	bill.Status = status
	bill.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// Delete elimina una factura concreta y devuelve el registro eliminado.
func (uc *BillUseCase) Delete(ctx context.Context, billID string) (*dto.DeleteBillResponse, error) {
	bill, err := uc.repo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, billID); err != nil {
		return nil, err
	}
	return &dto.DeleteBillResponse{
		Message: "Bill deleted",
		Deleted: toBillResponse(bill),
	}, nil
}

// DeleteByCustomer elimina todas las facturas del cliente. Cero coincidencias
// es un resultado válido, no un error.
func (uc *BillUseCase) DeleteByCustomer(ctx context.Context, customerID string) (*dto.DeleteBillsResponse, error) {
	n, err := uc.repo.DeleteByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteBillsResponse{DeletedCount: n}, nil
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	return &dto.BillResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		CustomerID:  b.CustomerID,
		Amount:      b.Amount,
		Quantity:    b.Quantity,
		Description: b.Description,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBillResponses(list []*entity.Bill) []*dto.BillResponse {
	out := make([]*dto.BillResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBillResponse(b))
	}
	return out
}
