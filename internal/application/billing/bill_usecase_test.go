package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

func validBill() dto.CreateBillRequest {
	return dto.CreateBillRequest{
		UserID:      "u1",
		CustomerID:  "c1",
		Amount:      dec(100),
		Quantity:    dec(2),
		Description: "servicio mensual",
	}
}

func TestBillUseCase_Create_EstadoPorDefecto(t *testing.T) {
	_, uc := newBillingEnv()

	out, err := uc.Create(context.Background(), validBill())

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.BillStatusUnpaid, out.Status, "sin status explícito la factura nace unpaid")
	assert.True(t, out.Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(2)))
}

func TestBillUseCase_Create_EstadoExplicito(t *testing.T) {
	_, uc := newBillingEnv()

	in := validBill()
	in.Status = entity.BillStatusPending
	out, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPending, out.Status)
}

func TestBillUseCase_Create_Validacion(t *testing.T) {
	_, uc := newBillingEnv()
	ctx := context.Background()

	negative := decimal.NewFromInt(-1)
	zero := decimal.Zero

	cases := map[string]func(*dto.CreateBillRequest){
		"sin userId":         func(in *dto.CreateBillRequest) { in.UserID = "" },
		"sin customerId":     func(in *dto.CreateBillRequest) { in.CustomerID = "" },
		"sin amount":         func(in *dto.CreateBillRequest) { in.Amount = nil },
		"sin quantity":       func(in *dto.CreateBillRequest) { in.Quantity = nil },
		"amount negativo":    func(in *dto.CreateBillRequest) { in.Amount = &negative },
		"quantity cero":      func(in *dto.CreateBillRequest) { in.Quantity = &zero },
		"status desconocido": func(in *dto.CreateBillRequest) { in.Status = "overdue" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validBill()
			mutate(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestBillUseCase_Create_AmountCero: amount >= 0, así que cero es válido.
func TestBillUseCase_Create_AmountCero(t *testing.T) {
	_, uc := newBillingEnv()

	in := validBill()
	zero := decimal.Zero
	in.Amount = &zero
	out, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.True(t, out.Amount.IsZero())
}

// La referencia factura→cliente es blanda: crear contra un cliente
// inexistente no falla.
func TestBillUseCase_Create_ClienteInexistente(t *testing.T) {
	_, uc := newBillingEnv()

	in := validBill()
	in.CustomerID = "jamas-creado"
	_, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
}

func TestBillUseCase_UpdateStatus_OK(t *testing.T) {
	_, uc := newBillingEnv()
	ctx := context.Background()

	created, err := uc.Create(ctx, validBill())
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(ctx, created.ID, entity.BillStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPaid, updated.Status)
	assert.Equal(t, created.ID, updated.ID)
}

// TestBillUseCase_UpdateStatus_FueraDeDominio: un estado inválido falla y no
// muta el registro.
func TestBillUseCase_UpdateStatus_FueraDeDominio(t *testing.T) {
	_, uc := newBillingEnv()
	ctx := context.Background()

	created, err := uc.Create(ctx, validBill())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, created.ID, "cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.ListByCustomer(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.BillStatusUnpaid, list[0].Status, "el registro no debe mutar")
}

func TestBillUseCase_UpdateStatus_NoExiste(t *testing.T) {
	_, uc := newBillingEnv()

	_, err := uc.UpdateStatus(context.Background(), "no-existe", entity.BillStatusPaid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBillUseCase_Delete_OK(t *testing.T) {
	_, uc := newBillingEnv()
	ctx := context.Background()

	created, err := uc.Create(ctx, validBill())
	require.NoError(t, err)

	out, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.Deleted.ID)

	list, err := uc.ListByCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBillUseCase_Delete_NoExiste(t *testing.T) {
	_, uc := newBillingEnv()

	_, err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestBillUseCase_DeleteByCustomer_Idempotente: cero coincidencias es un
// resultado válido, no un error.
func TestBillUseCase_DeleteByCustomer_Idempotente(t *testing.T) {
	_, uc := newBillingEnv()
	ctx := context.Background()

	out, err := uc.DeleteByCustomer(ctx, "sin-facturas")
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.DeletedCount)

	// Repetir tampoco falla
	out, err = uc.DeleteByCustomer(ctx, "sin-facturas")
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.DeletedCount)
}

func TestBillUseCase_DeleteByCustomer_SoloDelCliente(t *testing.T) {
	_, uc := newBillingEnv()
	ctx := context.Background()

	_, err := uc.Create(ctx, validBill())
	require.NoError(t, err)
	otherCustomer := validBill()
	otherCustomer.CustomerID = "c2"
	_, err = uc.Create(ctx, otherCustomer)
	require.NoError(t, err)

	out, err := uc.DeleteByCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.DeletedCount)

	kept, err := uc.ListByCustomer(ctx, "c2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
