package sunat

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo del dígito verificador del RUC (algoritmo módulo 11 SUNAT).
// Se aplican a los 10 primeros dígitos del RUC, de izquierda a derecha.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// prefijos válidos de RUC: 10/15/16/17 persona natural, 20 persona jurídica.
var validRUCPrefixes = map[string]bool{
	"10": true, "15": true, "16": true, "17": true, "20": true,
}

// ValidateRUC valida que el RUC (con o sin puntos/guiones) tenga 11 dígitos,
// un prefijo de tipo de contribuyente válido y un dígito verificador correcto
// según el algoritmo módulo 11 de SUNAT.
func ValidateRUC(taxID string) error {
	digits := extractDigits(taxID)
	if len(digits) != 11 {
		return fmt.Errorf("sunat: RUC debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	if !validRUCPrefixes[string(digits[:2])] {
		return fmt.Errorf("sunat: prefijo de RUC inválido: %s", digits[:2])
	}
	expected := checkDigit(digits[:10])
	if digits[10] != expected {
		return fmt.Errorf("sunat: dígito verificador del RUC inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// ComputeRUCCheckDigit calcula el dígito verificador para los 10 primeros dígitos del RUC.
func ComputeRUCCheckDigit(taxID string) (byte, error) {
	digits := extractDigits(taxID)
	if len(digits) < 10 {
		return 0, fmt.Errorf("sunat: se requieren al menos 10 dígitos para calcular el dígito verificador, se encontraron %d", len(digits))
	}
	return checkDigit(digits[:10]), nil
}

func checkDigit(base []byte) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * rucWeights[i]
	}
	r := 11 - sum%11
	return byte('0' + r%10)
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
