package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLen is the smallest key accepted for HS512 (hash output size).
const MinSecretLen = 64

// ErrEmptyToken is returned by Verify for an empty candidate token.
var ErrEmptyToken = errors.New("token is empty")

// Claims is the validated claim set carried by a session token.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject back into the numeric user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject %q: %w", c.Subject, err)
	}
	return uint(id), nil
}

// Codec issues and verifies HS512-signed session tokens. It holds no state
// beyond the configured secret and TTL and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration

	// now is swappable for expiry tests
	now func() time.Time
}

// New builds a Codec. A secret shorter than MinSecretLen is a configuration
// error: construction happens once at startup and must fail the process.
func New(secret string, ttl time.Duration) (*Codec, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("signing secret must be at least %d bytes for HS512, got %d", MinSecretLen, len(secret))
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue mints a compact token for the given user. The subject is the user id
// in decimal string form; expiry is issuance time plus the configured TTL.
func (c *Codec) Issue(userID uint, username, email, role string) (string, error) {
	now := c.now()
	claims := Claims{
		Username: username,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a candidate token and returns its claim set.
// It fails — without panicking — on empty input, malformed tokens, signature
// mismatch, non-HS512 algorithms and expired tokens. Callers treat any error
// as "unauthenticated", never as fatal.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrEmptyToken
	}

	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	tok, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }
