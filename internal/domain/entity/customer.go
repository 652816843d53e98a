package entity

import "time"

// Customer representa un cliente del negocio.
// UserID es el identificador opaco emitido por el proveedor de identidad
// externo; este núcleo no lo interpreta ni lo valida.
type Customer struct {
	ID        string
	UserID    string
	FirstName string
	LastName  string
	Email     string // único a nivel global
	Phone     string
	Company   string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
