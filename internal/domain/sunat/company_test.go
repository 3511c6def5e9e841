package sunat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainsunat "github.com/RobertArzolaC/arka/internal/domain/sunat"
)

func TestValidateDomain(t *testing.T) {
	assert.NoError(t, domainsunat.ValidateDomain("mi-empresa"))
	assert.NoError(t, domainsunat.ValidateDomain("empresa123"))
	assert.Error(t, domainsunat.ValidateDomain(""))
	assert.Error(t, domainsunat.ValidateDomain("mi empresa"))
	assert.Error(t, domainsunat.ValidateDomain("empresa.com"))
	assert.Error(t, domainsunat.ValidateDomain("ñandú"))
}

func TestValidateRUC(t *testing.T) {
	// RUCs reales con dígito verificador correcto
	assert.NoError(t, domainsunat.ValidateRUC("20100070970"))
	assert.NoError(t, domainsunat.ValidateRUC("20131312955"))
	// Con separadores
	assert.NoError(t, domainsunat.ValidateRUC("20.100.070.970"))

	assert.Error(t, domainsunat.ValidateRUC("20123456789"), "dígito verificador incorrecto")
	assert.Error(t, domainsunat.ValidateRUC("2010007097"), "10 dígitos")
	assert.Error(t, domainsunat.ValidateRUC("30100070970"), "prefijo inválido")
	assert.Error(t, domainsunat.ValidateRUC(""))
}

func TestValidateRegime(t *testing.T) {
	for _, r := range []string{"ESPECIAL", "GENERAL", "MYPE", "RUS"} {
		assert.NoError(t, domainsunat.ValidateRegime(r))
	}
	assert.Error(t, domainsunat.ValidateRegime("general"))
	assert.Error(t, domainsunat.ValidateRegime("OTRO"))
}

func TestValidateBranchCode(t *testing.T) {
	assert.NoError(t, domainsunat.ValidateBranchCode("0000"))
	assert.NoError(t, domainsunat.ValidateBranchCode("0001"))
	assert.Error(t, domainsunat.ValidateBranchCode("001"))
	assert.Error(t, domainsunat.ValidateBranchCode("00001"))
	assert.Error(t, domainsunat.ValidateBranchCode("ABC1"))
}

func TestSuggestDomain(t *testing.T) {
	assert.Equal(t, "panaderia-san-jose", domainsunat.SuggestDomain("Panadería San José"))
	assert.Equal(t, "acme-s-a-c", domainsunat.SuggestDomain("ACME S.A.C."))
	assert.Equal(t, "el-nino", domainsunat.SuggestDomain("  El Niño  "))
	assert.Equal(t, "", domainsunat.SuggestDomain("¡¿!?"))
}
