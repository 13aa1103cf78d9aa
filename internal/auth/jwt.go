// Package auth issues and verifies the session tokens carried in the "token" cookie.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	RoleGuest = "guest"
	RoleStaff = "staff"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrStaffDenied  = errors.New("staff token denied")
)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	staff    map[string]struct{}
	staffKey []byte
	now      func() time.Time
}

// NewIssuer builds an issuer. Staff tokens are disabled when staffKey is empty.
func NewIssuer(secret string, ttl time.Duration, staffEmails []string, staffKey string) *Issuer {
	staff := make(map[string]struct{}, len(staffEmails))
	for _, e := range staffEmails {
		if e = strings.TrimSpace(e); e != "" {
			staff[strings.ToLower(e)] = struct{}{}
		}
	}

	return &Issuer{
		secret:   []byte(secret),
		ttl:      ttl,
		staff:    staff,
		staffKey: []byte(staffKey),
		now:      time.Now,
	}
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for email. Without staffKey the token is always a guest
// token. A staff token needs both a listed email and the configured staff key;
// anything else returns ErrStaffDenied.
func (i *Issuer) Issue(email, staffKey string) (string, error) {
	role := RoleGuest
	if staffKey != "" {
		if !i.isStaff(email, staffKey) {
			return "", ErrStaffDenied
		}
		role = RoleStaff
	}

	now := i.now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (i *Issuer) isStaff(email, staffKey string) bool {
	if len(i.staffKey) == 0 {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(staffKey), i.staffKey) != 1 {
		return false
	}
	_, ok := i.staff[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Email == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}
