package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/internal/application/billing"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/infrastructure/memory"
)

// newBillingEnv arma casos de uso sobre repositorios en memoria.
func newBillingEnv() (*billing.CustomerUseCase, *billing.BillUseCase) {
	customers := memory.NewCustomerRepository()
	bills := memory.NewBillRepository()
	tx := memory.NewTxRunner(customers, bills)
	return billing.NewCustomerUseCase(customers, tx), billing.NewBillUseCase(bills)
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func validCustomer() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		UserID:    "u1",
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@ejemplo.com",
		Phone:     "3001112233",
		Company:   "ACME",
	}
}

func TestCustomerUseCase_Create_OK(t *testing.T) {
	uc, _ := newBillingEnv()

	out, err := uc.Create(context.Background(), validCustomer())

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "el id lo genera el servidor")
	assert.Equal(t, "u1", out.UserID)
	assert.Equal(t, "Ana", out.FirstName)
	assert.Equal(t, "ana@ejemplo.com", out.Email)
	assert.False(t, out.CreatedAt.IsZero())
	assert.False(t, out.UpdatedAt.IsZero())
}

func TestCustomerUseCase_Create_CamposObligatorios(t *testing.T) {
	uc, _ := newBillingEnv()
	ctx := context.Background()

	mutations := map[string]func(*dto.CreateCustomerRequest){
		"sin userId":    func(in *dto.CreateCustomerRequest) { in.UserID = "" },
		"sin firstName": func(in *dto.CreateCustomerRequest) { in.FirstName = "" },
		"sin lastName":  func(in *dto.CreateCustomerRequest) { in.LastName = "" },
		"sin email":     func(in *dto.CreateCustomerRequest) { in.Email = "" },
		"email blanco":  func(in *dto.CreateCustomerRequest) { in.Email = "   " },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			in := validCustomer()
			mutate(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestCustomerUseCase_Create_EmailDuplicado: el email es único a nivel
// global; el segundo intento se rechaza y no crea registro.
func TestCustomerUseCase_Create_EmailDuplicado(t *testing.T) {
	uc, _ := newBillingEnv()
	ctx := context.Background()

	_, err := uc.Create(ctx, validCustomer())
	require.NoError(t, err)

	dup := validCustomer()
	dup.UserID = "u2" // mismo email desde otro usuario también choca
	dup.FirstName = "Otra"
	_, err = uc.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1, "no debe existir un duplicado")
}

func TestCustomerUseCase_ListByUser_OrdenDeInsercion(t *testing.T) {
	uc, _ := newBillingEnv()
	ctx := context.Background()

	first := validCustomer()
	second := validCustomer()
	second.FirstName = "Berta"
	second.Email = "berta@ejemplo.com"

	_, err := uc.Create(ctx, first)
	require.NoError(t, err)
	_, err = uc.Create(ctx, second)
	require.NoError(t, err)

	list, err := uc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].FirstName)
	assert.Equal(t, "Berta", list[1].FirstName)
}

func TestCustomerUseCase_Delete_NoExiste(t *testing.T) {
	uc, _ := newBillingEnv()

	_, err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestCustomerUseCase_Delete_Cascada: borrar un cliente arrastra todas sus
// facturas y solo las suyas.
func TestCustomerUseCase_Delete_Cascada(t *testing.T) {
	customerUC, billUC := newBillingEnv()
	ctx := context.Background()

	victim, err := customerUC.Create(ctx, validCustomer())
	require.NoError(t, err)

	other := validCustomer()
	other.Email = "otra@ejemplo.com"
	survivor, err := customerUC.Create(ctx, other)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = billUC.Create(ctx, dto.CreateBillRequest{
			UserID: "u1", CustomerID: victim.ID, Amount: dec(100), Quantity: dec(1),
		})
		require.NoError(t, err)
	}
	_, err = billUC.Create(ctx, dto.CreateBillRequest{
		UserID: "u1", CustomerID: survivor.ID, Amount: dec(50), Quantity: dec(1),
	})
	require.NoError(t, err)

	out, err := customerUC.Delete(ctx, victim.ID)
	require.NoError(t, err)
	assert.Equal(t, victim.ID, out.DeletedCustomer.ID)
	assert.Equal(t, int64(2), out.DeletedBillsCount)

	orphans, err := billUC.ListByCustomer(ctx, victim.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "no deben quedar facturas huérfanas")

	kept, err := billUC.ListByCustomer(ctx, survivor.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "las facturas de otros clientes no se tocan")
}
