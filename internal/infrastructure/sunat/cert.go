// Conversión de certificados digitales .p12/.pfx (PKCS#12) a PEM.

package sunat

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"time"

	"golang.org/x/crypto/pkcs12"

	"github.com/RobertArzolaC/arka/internal/application/usecase"
)

var _ usecase.CertificateConverter = (*CertConverter)(nil)

// CertConverter convierte el .pfx/.p12 subido por la empresa al formato PEM
// que exigen los servicios de firma de SUNAT.
type CertConverter struct{}

func NewCertConverter() *CertConverter {
	return &CertConverter{}
}

// ConvertToPEM decodifica el PKCS#12 y devuelve llave privada y certificado
// concatenados en PEM. El password puede ser vacío si el archivo no está
// protegido.
func (c *CertConverter) ConvertToPEM(pfxData []byte, password string) (string, error) {
	blocks, err := pkcs12.ToPEM(pfxData, password)
	if err != nil {
		return "", fmt.Errorf("decodificar p12: %w", err)
	}
	var buf bytes.Buffer
	for _, b := range blocks {
		// pkcs12.ToPEM arrastra atributos de bolsa que algunos parsers rechazan.
		clean := &pem.Block{Type: b.Type, Bytes: b.Bytes}
		if err := pem.Encode(&buf, clean); err != nil {
			return "", fmt.Errorf("codificar PEM: %w", err)
		}
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("p12 sin contenido")
	}
	return buf.String(), nil
}

// Inspect devuelve titular y vigencia del certificado hoja de un PEM.
func (c *CertConverter) Inspect(pemData string) (string, time.Time, error) {
	cert, err := LeafCertificate(pemData)
	if err != nil {
		return "", time.Time{}, err
	}
	return cert.Subject.String(), cert.NotAfter, nil
}

// LeafCertificate extrae el certificado hoja de un PEM combinado, útil para
// mostrar vigencia y titular al administrador.
func LeafCertificate(pemData string) (*x509.Certificate, error) {
	rest := []byte(pemData)
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, fmt.Errorf("PEM sin certificado")
		}
		if block.Type == "CERTIFICATE" {
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("parsear certificado: %w", err)
			}
			return cert, nil
		}
	}
}
