package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/peoplesmarkets/media/netutil"
)

// ErrInvalidToken is returned for any token that fails signature, claims, or key-lookup validation.
var ErrInvalidToken = errors.New("auth: invalid token")

// Config configures a 'Verifier'.
type Config struct {
	// JWKSURL is the remote key-set document location.
	JWKSURL string
	// JWKSHost, when set, overrides the Host header of the JWKS fetch request (§4.3).
	JWKSHost string
	// RefreshInterval is the minimum time between JWKS refetches; values below 'DefaultRefreshInterval' are
	// raised to it.
	RefreshInterval time.Duration

	// HTTPTimeouts configures the dialer/transport timeouts of the JWKS HTTP client.
	HTTPTimeouts netutil.HTTPTimeouts
}

// Verifier validates compact signed bearer tokens against a remote, cached key set and extracts the caller's
// subject claim (§4.3).
type Verifier struct {
	cache *keySetCache
}

// NewVerifier builds a 'Verifier' from 'cfg'.
func NewVerifier(cfg Config) *Verifier {
	fetcher := NewHTTPKeySetFetcher(cfg.JWKSURL, cfg.JWKSHost, cfg.HTTPTimeouts)

	return &Verifier{cache: newKeySetCache(fetcher, cfg.RefreshInterval)}
}

// NewVerifierWithFetcher builds a 'Verifier' around a caller-supplied 'KeySetFetcher', primarily for tests that
// want to avoid a real HTTP round-trip.
func NewVerifierWithFetcher(fetcher KeySetFetcher, refreshInterval time.Duration) *Verifier {
	return &Verifier{cache: newKeySetCache(fetcher, refreshInterval)}
}

func (v *Verifier) keyfunc(token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("%w: missing kid header", ErrInvalidToken)
	}

	jwk, err := v.cache.key(context.Background(), kid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return jwkToRSAPublicKey(jwk)
}

// Verify parses and validates 'rawToken', returning the subject claim identifying the caller (§4.3).
func (v *Verifier) Verify(ctx context.Context, rawToken string) (string, error) {
	claims := jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("%w: missing kid header", ErrInvalidToken)
		}

		jwk, keyErr := v.cache.key(ctx, kid)
		if keyErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, keyErr)
		}

		return jwkToRSAPublicKey(jwk)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}

	return claims.Subject, nil
}

func jwkToRSAPublicKey(jwk *jsonWebKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(jwk.N)
	if err != nil {
		return nil, fmt.Errorf("auth: decode jwk modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(jwk.E)
	if err != nil {
		return nil, fmt.Errorf("auth: decode jwk exponent: %w", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
