// Package sunat contiene las validaciones de dominio para la administración de
// empresas, sucursales y series de comprobantes según las convenciones SUNAT
// (Perú). Utiliza los catálogos de pkg/sunat.
package sunat

import (
	"fmt"
	"strings"

	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/pkg/sunat"
)

// CorrelativeDigits ancho fijo del correlativo en los comprobantes electrónicos.
const CorrelativeDigits = 8

// NormalizeSeriesCode normaliza un código de serie: recorta espacios y
// convierte a mayúsculas. Siempre debe aplicarse antes de validar.
func NormalizeSeriesCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateSeriesCode valida un código de serie ya normalizado contra el tipo de
// comprobante: exactamente 4 caracteres, 1 letra seguida de 3 dígitos, y la
// letra debe estar entre los prefijos permitidos para el tipo (catálogo 01).
// Las notas de crédito/débito aceptan F o B indistintamente.
func ValidateSeriesCode(docType, code string) error {
	if !sunat.IsValidDocumentType(docType) {
		return domain.NewValidationError("document_type", "tipo de comprobante desconocido: %q", docType)
	}
	if len(code) != 4 {
		return domain.NewValidationError("series_code", "la serie debe tener 4 caracteres, tiene %d", len(code))
	}
	first := code[0]
	if first < 'A' || first > 'Z' {
		return domain.NewValidationError("series_code", "la serie debe iniciar con una letra mayúscula")
	}
	for i := 1; i < 4; i++ {
		if code[i] < '0' || code[i] > '9' {
			return domain.NewValidationError("series_code", "los 3 últimos caracteres de la serie deben ser dígitos")
		}
	}
	prefixes := sunat.SeriesPrefixesFor(docType)
	for _, p := range prefixes {
		if strings.HasPrefix(code, p) {
			return nil
		}
	}
	return domain.NewValidationError("series_code",
		"la serie para %s debe iniciar con %s",
		sunat.DocumentTypeName(docType), strings.Join(prefixes, " o "))
}

// ValidateStartingCorrelative valida el correlativo inicial de una serie nueva.
func ValidateStartingCorrelative(n int64) error {
	if n < 1 {
		return domain.NewValidationError("current_correlative", "el correlativo inicial debe ser mayor o igual a 1")
	}
	return nil
}

// FormatCorrelative formatea un correlativo como cadena decimal de ancho fijo
// con ceros a la izquierda, ej. 5 -> "00000005".
func FormatCorrelative(n int64) string {
	return fmt.Sprintf("%0*d", CorrelativeDigits, n)
}
