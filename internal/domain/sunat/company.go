package sunat

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/pkg/sunat"
)

var (
	domainPattern     = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	branchCodePattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// ValidateDomain valida el subdominio de acceso de la empresa:
// solo alfanuméricos y guiones, no vacío.
func ValidateDomain(d string) error {
	if d == "" {
		return domain.NewValidationError("domain", "el dominio es requerido")
	}
	if !domainPattern.MatchString(d) {
		return domain.NewValidationError("domain", "el dominio solo admite alfanuméricos y guiones")
	}
	return nil
}

// ValidateRUC valida el RUC con el algoritmo módulo 11 de SUNAT.
func ValidateRUC(ruc string) error {
	if err := sunat.ValidateRUC(ruc); err != nil {
		return domain.NewValidationError("ruc", "%s", err.Error())
	}
	return nil
}

// ValidateRegime valida el régimen tributario contra el catálogo.
func ValidateRegime(regime string) error {
	if !sunat.ValidTaxRegimes[regime] {
		return domain.NewValidationError("regime", "régimen tributario desconocido: %q", regime)
	}
	return nil
}

// ValidateBranchCode valida el código de establecimiento SUNAT: 4 dígitos exactos.
func ValidateBranchCode(code string) error {
	if !branchCodePattern.MatchString(code) {
		return domain.NewValidationError("sunat_code", "el código de establecimiento debe tener 4 dígitos")
	}
	return nil
}

// SuggestDomain propone un subdominio a partir del nombre comercial:
// quita tildes (NFD + eliminación de marcas diacríticas), pasa a minúsculas y
// reemplaza todo lo que no sea alfanumérico por guiones.
func SuggestDomain(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
