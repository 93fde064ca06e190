package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer signs and verifies the bearer tokens handed to back-office operators.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed HS256 token for the given employee.
func (i *Issuer) Issue(employeeID uint, email string, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":         email,
		"employee_id": float64(employeeID),
		"iat":         issuedAt.Unix(),
		"exp":         issuedAt.Add(i.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses a token string and returns the employee id it carries.
func (i *Issuer) Verify(tokenString string) (uint, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	id, ok := claims["employee_id"].(float64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("invalid token: missing employee_id")
	}
	return uint(id), nil
}
