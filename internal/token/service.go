package token

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/luminauth/idp-console/internal/config"
)

// Claims represents the JWT registered claims plus session metadata.
type Claims struct {
	Scope []string `json:"scope,omitempty"`
	Email string   `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the parsed subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// HasScope reports whether the token carries the given scope.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scope {
		if s == scope {
			return true
		}
	}
	return false
}

// Service verifies, and when signing material is present mints, RS256 JWTs.
type Service struct {
	cfg        config.TokenConfig
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	parser     *jwt.Parser
}

// NewService loads verification material and returns a token service. The
// private key is optional; without it the service is parse-only.
func NewService(cfg config.TokenConfig) (*Service, error) {
	pub, err := loadPublicKey(cfg.PublicKeyPath)
	if err != nil {
		return nil, err
	}

	var priv *rsa.PrivateKey
	if cfg.PrivateKeyPath != "" {
		priv, err = loadPrivateKey(cfg.PrivateKeyPath)
		if err != nil {
			return nil, err
		}
	}
	return newService(cfg, priv, pub), nil
}

// NewWithKeypair builds a Service from in-memory keys. Used by tests and the
// seed tooling, where keys are generated rather than loaded from disk.
func NewWithKeypair(cfg config.TokenConfig, priv *rsa.PrivateKey) *Service {
	return newService(cfg, priv, &priv.PublicKey)
}

func newService(cfg config.TokenConfig, priv *rsa.PrivateKey, pub *rsa.PublicKey) *Service {
	return &Service{
		cfg:        cfg,
		privateKey: priv,
		publicKey:  pub,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		),
	}
}

// MintInput defines metadata for token minting.
type MintInput struct {
	UserID uuid.UUID
	Email  string
	Scopes []string
}

// Mint generates a signed JWT for the given user.
func (s *Service) Mint(input MintInput) (string, time.Time, error) {
	if s.privateKey == nil {
		return "", time.Time{}, fmt.Errorf("token service has no signing key")
	}
	now := time.Now().UTC()
	exp := now.Add(s.cfg.AccessTokenTTL)

	claims := &Claims{
		Scope: input.Scopes,
		Email: input.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			Subject:   input.UserID.String(),
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign jwt: %w", err)
	}
	return signed, exp, nil
}

// Parse validates and parses a JWT token string.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := s.parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token invalid")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("token claims mismatch")
	}
	return claims, nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("decode private key pem: empty block")
	}
	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return key, nil
	}
	pkcs8Key, err2 := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err2 != nil {
		return nil, fmt.Errorf("parse private key: %v / %v", err, err2)
	}
	rsaKey, ok := pkcs8Key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA")
	}
	return rsaKey, nil
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("decode public key pem: empty block")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not RSA")
	}
	return rsaPub, nil
}
