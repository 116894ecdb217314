package gce

import (
	"fmt"
	"strings"

	"github.com/imamik/gcenode/internal/util/keygen"
)

// LoginCredentials is the resolved login bundle for a node: identity,
// private key, optional password, and the sudo-authentication flag.
// Derived per node creation, never persisted.
type LoginCredentials struct {
	User             string
	PrivateKey       string
	PublicKey        string
	Password         string
	AuthenticateSudo bool
}

// loginKeyBits sizes generated login key pairs.
const loginKeyBits = 2048

// ResolveLoginCredentials merges an image's embedded default credentials
// with the caller's overrides.
//
// An image's default bundle stores its public key concatenated with the
// private key as "public:private"; the two are split here, and the public
// half is injected into the options iff the caller supplied none. User,
// private key, password, and sudo flag are each independently overridden
// when the options specify them. When neither the image nor the caller
// carries key material, a fresh key pair is generated.
//
// The merged bundle is written back into opts.ResolvedCredentials so every
// subsequent provisioning step observes the same final value.
func ResolveLoginCredentials(image *Image, opts *Options) (*LoginCredentials, error) {
	creds := &LoginCredentials{}

	if image.DefaultCredentials != nil {
		defaults := image.DefaultCredentials
		creds.User = defaults.User
		creds.Password = defaults.Password
		creds.AuthenticateSudo = defaults.AuthenticateSudo

		publicKey, privateKey, ok := strings.Cut(defaults.PrivateKey, ":")
		if !ok {
			return nil, &ValidationError{
				Field:  "image.defaultCredentials",
				Reason: "combined key material is missing the ':' separator",
			}
		}
		creds.PrivateKey = privateKey
		if opts.PublicKey == "" {
			opts.PublicKey = publicKey
		}
	} else if opts.PrivateKey == "" && opts.PublicKey == "" {
		keyPair, err := keygen.GenerateLoginKeyPair(loginKeyBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate login key pair: %w", err)
		}
		opts.PrivateKey = keyPair.PrivateKey
		opts.PublicKey = keyPair.PublicKey
	}

	creds.PublicKey = opts.PublicKey
	if opts.PrivateKey != "" {
		creds.PrivateKey = opts.PrivateKey
	}
	if opts.LoginUser != "" {
		creds.User = opts.LoginUser
	}
	if opts.Password != nil {
		creds.Password = *opts.Password
	}
	if opts.AuthenticateSudo != nil {
		creds.AuthenticateSudo = *opts.AuthenticateSudo
	}

	opts.ResolvedCredentials = creds
	return creds, nil
}
