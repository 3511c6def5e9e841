package dto

import "time"

// RegisterSeriesRequest entrada para registrar una serie de numeración.
// SeriesCode se normaliza a mayúsculas antes de validar. StartingCorrelative
// cero u omitido equivale a iniciar en 1.
type RegisterSeriesRequest struct {
	DocumentType        string `json:"document_type" validate:"required,len=2"`
	SeriesCode          string `json:"series_code" validate:"required,len=4"`
	StartingCorrelative int64  `json:"starting_correlative" validate:"omitempty,min=1"`
}

// SeriesResponse salida de una serie de numeración.
type SeriesResponse struct {
	ID                 string    `json:"id"`
	BranchID           string    `json:"branch_id"`
	DocumentType       string    `json:"document_type"`
	DocumentTypeName   string    `json:"document_type_name"`
	SeriesCode         string    `json:"series_code"`
	CurrentCorrelative int64     `json:"current_correlative"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AllocationResponse resultado de asignar el siguiente correlativo de una serie.
// Correlative es el número emitido con 8 dígitos, FullNumber la referencia
// completa serie-correlativo (ej. "F001-00000005").
type AllocationResponse struct {
	SeriesID    string `json:"series_id"`
	SeriesCode  string `json:"series_code"`
	Correlative string `json:"correlative"`
	FullNumber  string `json:"full_number"`
}
