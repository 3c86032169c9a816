package entity

import "time"

// Roles de usuario del panel administrativo.
const (
	RoleAdmin      = "admin"
	RoleAlmacenero = "almacenero"
	RoleMecanico   = "mecanico"
	RoleContador   = "contador"
	RoleVisor      = "visor"
)

// User usuario del sistema con rol para RBAC.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
