// Package auth issues and checks the HS256 bearer tokens that guard the
// mutating API routes.
package auth

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrNoSecret     = errors.New("jwt secret is empty")
)

// Claims identify the caller.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`

	jwtlib.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService signs with secret. A ttl of zero issues tokens that never expire.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for username.
func (s *Service) Issue(username string, isAdmin bool) (string, error) {
	now := s.now().UTC()
	c := Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:  username,
			IssuedAt: jwtlib.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		c.ExpiresAt = jwtlib.NewNumericDate(now.Add(s.ttl))
	}

	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.secret)
}

// Parse verifies the signature and expiry of token.
func (s *Service) Parse(token string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !tok.Valid || c.Username == "" {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
