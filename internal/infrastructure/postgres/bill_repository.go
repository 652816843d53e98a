package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

const billColumns = `id, user_id, customer_id, amount, quantity, description, status, created_at, updated_at`

// Create persiste una nueva factura.
func (r *BillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		bill.ID, bill.UserID, bill.CustomerID, bill.Amount, bill.Quantity,
		bill.Description, bill.Status, bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *BillRepo) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	b, err := scanBill(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// ListByCustomer lista las facturas que referencian al cliente.
func (r *BillRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE customer_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, customerID)
}

// ListByUser lista todas las facturas del usuario.
func (r *BillRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE user_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, userID)
}

// Update actualiza estado y montos de una factura.
func (r *BillRepo) Update(ctx context.Context, bill *entity.Bill) error {
	query := `
		UPDATE bills SET amount = $2, quantity = $3, description = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		bill.ID, bill.Amount, bill.Quantity, bill.Description, bill.Status, bill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *BillRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todas las facturas del cliente y devuelve cuántas
// filas cayeron. Cero no es un error.
func (r *BillRepo) DeleteByCustomer(ctx context.Context, customerID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM bills WHERE customer_id = $1`, customerID)
	if err != nil {
		return 0, fmt.Errorf("delete bills by customer: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BillRepo) list(ctx context.Context, query string, arg any) ([]*entity.Bill, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var b entity.Bill
	err := row.Scan(
		&b.ID, &b.UserID, &b.CustomerID, &b.Amount, &b.Quantity,
		&b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
