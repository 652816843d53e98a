package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clientes-api/internal/application/analytics"
	"github.com/jhoicas/Clientes-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *billing.CustomerUseCase
	BillUC      *billing.BillUseCase
	ReceiptUC   *billing.ReceiptUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API. Los paths conservan el contrato
// heredado, incluidos los prefijos explícitos de /api/bills que evitan que
// ":customerId" capture las rutas de usuario y de id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:userId", customerHandler.ListByUser)
	customers.Delete("/:customerId", customerHandler.Delete)

	// Bills (las rutas con prefijo van antes que la genérica ":customerId")
	bills := api.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC, deps.ReceiptUC)
	bills.Post("/", billHandler.Create)
	bills.Get("/user/:userId/all", billHandler.ListByUser)
	bills.Put("/:billId/status", billHandler.UpdateStatus)
	bills.Delete("/customer/:customerId", billHandler.DeleteByCustomer)
	bills.Get("/id/:billId/pdf", billHandler.Receipt)
	bills.Delete("/id/:billId", billHandler.Delete)
	bills.Get("/:customerId", billHandler.ListByCustomer)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/:userId", dashboardHandler.GetStats)
}
