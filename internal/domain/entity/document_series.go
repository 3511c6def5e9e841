package entity

import "time"

// DocumentSeries representa una serie de numeración de comprobantes por sucursal
// y tipo de documento (catálogo 01 SUNAT). CurrentCorrelative es el próximo
// número a emitir; solo lo muta el asignador de correlativos.
//
// Invariante: (BranchID, DocumentType, SeriesCode) es único entre series no
// eliminadas, y CurrentCorrelative nunca decrece ni reutiliza valores emitidos.
type DocumentSeries struct {
	ID                 string
	BranchID           string
	DocumentType       string // código de catálogo 01: "01", "03", "07", "08", "09"
	SeriesCode         string // 4 caracteres: 1 letra + 3 dígitos, ej. "F001"
	CurrentCorrelative int64  // próximo correlativo a emitir, siempre >= 1
	IsRemoved          bool   // soft-delete: fuera de búsquedas activas, retenida para auditoría
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
