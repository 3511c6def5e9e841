package sunat

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selfSignedPEM genera un certificado autofirmado y lo devuelve en PEM,
// precedido por su llave privada para imitar la salida de ConvertToPEM.
func selfSignedPEM(t *testing.T, commonName string, notAfter time.Time) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pem.Encode(&buf, &pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}))
	require.NoError(t, pem.Encode(&buf, &pem.Block{Type: "CERTIFICATE", Bytes: der}))
	return buf.String()
}

func TestLeafCertificate_SaltaBloquesQueNoSonCertificado(t *testing.T) {
	expiry := time.Now().Add(365 * 24 * time.Hour).Truncate(time.Second).UTC()
	pemData := selfSignedPEM(t, "EMPRESA DEMO S.A.C.", expiry)

	cert, err := LeafCertificate(pemData)
	require.NoError(t, err)
	assert.Equal(t, "EMPRESA DEMO S.A.C.", cert.Subject.CommonName)
	assert.True(t, cert.NotAfter.Equal(expiry))
}

func TestLeafCertificate_PEMSinCertificadoRetornaError(t *testing.T) {
	_, err := LeafCertificate("no es un PEM")
	assert.Error(t, err)
}

func TestInspect_DevuelveTitularYVigencia(t *testing.T) {
	expiry := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second).UTC()
	pemData := selfSignedPEM(t, "EMPRESA DEMO S.A.C.", expiry)

	subject, notAfter, err := NewCertConverter().Inspect(pemData)
	require.NoError(t, err)
	assert.Contains(t, subject, "EMPRESA DEMO S.A.C.")
	assert.True(t, notAfter.Equal(expiry))
}

func TestInspect_PEMInvalidoRetornaError(t *testing.T) {
	_, _, err := NewCertConverter().Inspect("")
	assert.Error(t, err)
}
