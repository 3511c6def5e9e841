package sunat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertArzolaC/arka/internal/domain"
	domainsunat "github.com/RobertArzolaC/arka/internal/domain/sunat"
	pkgsunat "github.com/RobertArzolaC/arka/pkg/sunat"
)

func TestNormalizeSeriesCode(t *testing.T) {
	assert.Equal(t, "F001", domainsunat.NormalizeSeriesCode("f001"))
	assert.Equal(t, "B099", domainsunat.NormalizeSeriesCode("  b099 "))
	assert.Equal(t, "T001", domainsunat.NormalizeSeriesCode("T001"))
}

// Series válidas por tipo de comprobante: factura F, boleta B, notas F o B, guía T.
func TestValidateSeriesCode_PrefijosValidos(t *testing.T) {
	cases := []struct {
		docType string
		code    string
	}{
		{pkgsunat.DocTypeFactura, "F001"},
		{pkgsunat.DocTypeBoleta, "B001"},
		{pkgsunat.DocTypeNotaCredito, "F001"},
		{pkgsunat.DocTypeNotaCredito, "B001"},
		{pkgsunat.DocTypeNotaDebito, "F321"},
		{pkgsunat.DocTypeNotaDebito, "B005"},
		{pkgsunat.DocTypeGuiaRemision, "T001"},
	}
	for _, c := range cases {
		assert.NoError(t, domainsunat.ValidateSeriesCode(c.docType, c.code),
			"serie %s debe ser válida para tipo %s", c.code, c.docType)
	}
}

func TestValidateSeriesCode_PrefijoIncorrecto(t *testing.T) {
	cases := []struct {
		docType string
		code    string
	}{
		{pkgsunat.DocTypeFactura, "B001"},
		{pkgsunat.DocTypeBoleta, "F001"},
		{pkgsunat.DocTypeGuiaRemision, "F001"},
		{pkgsunat.DocTypeGuiaRemision, "B001"},
		{pkgsunat.DocTypeNotaCredito, "T001"},
	}
	for _, c := range cases {
		err := domainsunat.ValidateSeriesCode(c.docType, c.code)
		require.Error(t, err, "serie %s no debe ser válida para tipo %s", c.code, c.docType)

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "series_code", ve.Field)
	}
}

func TestValidateSeriesCode_FormatoIncorrecto(t *testing.T) {
	cases := []string{
		"F01",   // 3 caracteres
		"F0001", // 5 caracteres
		"FA01",  // dos letras
		"1001",  // inicia con dígito
		"F0A1",  // letra en posición numérica
		"",      // vacía
	}
	for _, code := range cases {
		err := domainsunat.ValidateSeriesCode(pkgsunat.DocTypeFactura, code)
		require.Error(t, err, "serie %q debe ser rechazada", code)
		assert.True(t, domain.IsValidation(err))
	}
}

func TestValidateSeriesCode_TipoDesconocido(t *testing.T) {
	err := domainsunat.ValidateSeriesCode("99", "F001")
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "document_type", ve.Field)
}

func TestValidateStartingCorrelative(t *testing.T) {
	assert.NoError(t, domainsunat.ValidateStartingCorrelative(1))
	assert.NoError(t, domainsunat.ValidateStartingCorrelative(500))
	assert.Error(t, domainsunat.ValidateStartingCorrelative(0))
	assert.Error(t, domainsunat.ValidateStartingCorrelative(-1))
}

// El correlativo siempre se emite con 8 dígitos y ceros a la izquierda.
func TestFormatCorrelative(t *testing.T) {
	assert.Equal(t, "00000001", domainsunat.FormatCorrelative(1))
	assert.Equal(t, "00000042", domainsunat.FormatCorrelative(42))
	assert.Equal(t, "00012345", domainsunat.FormatCorrelative(12345))
	assert.Equal(t, "99999999", domainsunat.FormatCorrelative(99999999))
	assert.Len(t, domainsunat.FormatCorrelative(7), 8)
}
