// Package sunat contiene catálogos y validaciones alineados a los catálogos
// oficiales de comprobantes de pago electrónicos SUNAT (Perú).
package sunat

// =============================================================================
// Catálogo 01 - Tipos de Comprobante de Pago (Resolución 097-2012/SUNAT)
// Solo los tipos que el sistema emite; cada uno con su convención de prefijo
// de serie (letra inicial del código de serie).
// =============================================================================

const (
	DocTypeFactura      = "01" // Factura Electrónica
	DocTypeBoleta       = "03" // Boleta de Venta Electrónica
	DocTypeNotaCredito  = "07" // Nota de Crédito Electrónica
	DocTypeNotaDebito   = "08" // Nota de Débito Electrónica
	DocTypeGuiaRemision = "09" // Guía de Remisión Electrónica
)

// documentTypeNames nombre comercial de cada tipo de comprobante.
var documentTypeNames = map[string]string{
	DocTypeFactura:      "Factura Electrónica",
	DocTypeBoleta:       "Boleta de Venta Electrónica",
	DocTypeNotaCredito:  "Nota de Crédito Electrónica",
	DocTypeNotaDebito:   "Nota de Débito Electrónica",
	DocTypeGuiaRemision: "Guía de Remisión Electrónica",
}

// seriesPrefixes letras de serie permitidas por tipo de comprobante.
// Las notas de crédito y débito aceptan serie F (asociada a factura) o
// B (asociada a boleta); la guía de remisión usa siempre T.
var seriesPrefixes = map[string][]string{
	DocTypeFactura:      {"F"},
	DocTypeBoleta:       {"B"},
	DocTypeNotaCredito:  {"F", "B"},
	DocTypeNotaDebito:   {"F", "B"},
	DocTypeGuiaRemision: {"T"},
}

// IsValidDocumentType indica si el código pertenece al catálogo 01 soportado.
func IsValidDocumentType(code string) bool {
	_, ok := documentTypeNames[code]
	return ok
}

// DocumentTypeName devuelve el nombre del tipo de comprobante, o "" si no existe.
func DocumentTypeName(code string) string {
	return documentTypeNames[code]
}

// SeriesPrefixesFor devuelve las letras de serie válidas para el tipo dado.
// Devuelve nil si el tipo no está en el catálogo.
func SeriesPrefixesFor(docType string) []string {
	return seriesPrefixes[docType]
}

// =============================================================================
// Regímenes tributarios (ficha RUC)
// =============================================================================

const (
	RegimeEspecial = "ESPECIAL" // Régimen Especial de Renta
	RegimeGeneral  = "GENERAL"  // Régimen General
	RegimeMYPE     = "MYPE"     // Régimen MYPE Tributario
	RegimeRUS      = "RUS"      // Nuevo Régimen Único Simplificado
)

// ValidTaxRegimes regímenes tributarios válidos para una empresa.
var ValidTaxRegimes = map[string]bool{
	RegimeEspecial: true,
	RegimeGeneral:  true,
	RegimeMYPE:     true,
	RegimeRUS:      true,
}
