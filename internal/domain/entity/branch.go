package entity

import "time"

// PrincipalBranchCode código de establecimiento de la sucursal principal.
// Toda empresa nace con una sucursal "Principal" con este código.
const PrincipalBranchCode = "0000"

// Branch representa un establecimiento anexo de una empresa.
// SunatCode es el código de establecimiento de 4 dígitos declarado en la ficha RUC,
// único por empresa entre sucursales no eliminadas.
type Branch struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	SunatCode   string // 4 dígitos, ej. "0000" para la principal
	Address     string
	Phone       string
	Email       string
	Website     string
	IsRemoved   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
