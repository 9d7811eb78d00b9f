package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rental-marketplace/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingSub   = errors.New("token has no subject")
)

// Manager verifies bearer tokens and turns them into a model.Scope.
type Manager interface {
	Verify(token string) (model.Scope, error)
	Issue(sc model.Scope, ttl time.Duration) (string, error)
}

type claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

type manager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// New creates an HS256 Manager.
func New(secret, issuer string) Manager {
	return &manager{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Verify parses and validates token. The subject claim is the user id.
func (m *manager) Verify(token string) (model.Scope, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return model.Scope{}, ErrMissingSub
	}
	return model.Scope{UserID: c.Subject, Username: c.Username}, nil
}

// Issue signs a token for sc. Used by tests and the ops CLI.
func (m *manager) Issue(sc model.Scope, ttl time.Duration) (string, error) {
	now := m.now()
	c := claims{
		Username: sc.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sc.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}
