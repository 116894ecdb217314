package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// LoginKeyPair holds an RSA key pair in the formats node login expects.
type LoginKeyPair struct {
	// PrivateKey is the RSA private key in PEM-encoded PKCS#1 format.
	PrivateKey string
	// PublicKey is the public key in OpenSSH authorized_keys format.
	PublicKey string
}

// GenerateLoginKeyPair generates a new RSA key pair with the specified bit
// size. Common bit sizes are 2048 (minimum recommended) and 4096.
func GenerateLoginKeyPair(bits int) (*LoginKeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA private key: %w", err)
	}

	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate RSA private key: %w", err)
	}

	privDER := x509.MarshalPKCS1PrivateKey(privateKey)
	privateKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: privDER,
	})

	publicRsaKey, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to derive SSH public key: %w", err)
	}

	return &LoginKeyPair{
		PrivateKey: string(privateKeyPEM),
		PublicKey:  string(ssh.MarshalAuthorizedKey(publicRsaKey)),
	}, nil
}
