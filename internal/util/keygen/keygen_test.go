package keygen

import (
	"encoding/pem"
	"strings"
	"testing"

	"golang.org/x/crypto/ssh"
)

func TestGenerateLoginKeyPair(t *testing.T) {
	t.Parallel()

	keyPair, err := GenerateLoginKeyPair(2048)
	if err != nil {
		t.Fatalf("GenerateLoginKeyPair(2048) failed: %v", err)
	}

	block, _ := pem.Decode([]byte(keyPair.PrivateKey))
	if block == nil {
		t.Fatal("private key is not valid PEM")
	}
	if block.Type != "RSA PRIVATE KEY" {
		t.Errorf("expected PEM type 'RSA PRIVATE KEY', got %q", block.Type)
	}

	if !strings.HasPrefix(keyPair.PublicKey, "ssh-rsa ") {
		t.Errorf("expected OpenSSH public key, got %q", keyPair.PublicKey)
	}
	if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(keyPair.PublicKey)); err != nil {
		t.Errorf("public key does not parse as authorized_keys entry: %v", err)
	}
}

func TestGenerateLoginKeyPair_InvalidBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits int
	}{
		{"zero bits", 0},
		{"negative bits", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := GenerateLoginKeyPair(tt.bits); err == nil {
				t.Errorf("expected error for %d bits", tt.bits)
			}
		})
	}
}
