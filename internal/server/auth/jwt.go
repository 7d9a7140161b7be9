package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when a token is issued without an explicit lifetime.
const DefaultTokenTTL = 30 * time.Minute

// Claims carries the authenticated user's email in the standard "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs claims with HS256 after stamping iat and exp.
// A zero validity falls back to DefaultTokenTTL.
func GenerateToken(claims Claims, secretKey []byte, validityDuration time.Duration) (string, error) {
	if validityDuration == 0 {
		validityDuration = DefaultTokenTTL
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(validityDuration))

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken checks signature and expiry. It returns common.ErrTokenExpired
// for a correctly signed token past its exp, and common.ErrInvalidToken for
// everything else (bad signature, malformed input, other algorithms, no
// subject).
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		// the signature is verified before claims, so an expiry error
		// implies the token was ours
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// TokenService binds the process-wide signing secret and the default
// session lifetime. It holds no mutable state.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService(secretKey []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secretKey: secretKey, ttl: ttl}
}

// TTL is the lifetime applied by Issue when called with a zero ttl.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue returns a session token for subject valid for ttl, or for the
// service default when ttl is zero.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.ttl
	}
	return GenerateToken(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}, s.secretKey, ttl)
}

// Verify decodes token; see ParseToken for the error contract.
func (s *TokenService) Verify(token string) (*Claims, error) {
	return ParseToken(token, s.secretKey)
}
