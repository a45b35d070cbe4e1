package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/account"
)

type Claims struct {
	Role  account.Role `json:"role"`
	Name  string       `json:"name"`
	Phone string       `json:"phone"`
	jwt.RegisteredClaims
}

func IssueToken(acc account.Account, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:  acc.Role(),
		Name:  acc.DisplayName(),
		Phone: acc.ContactPhone(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Subject(acc),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies an HS256 token and rebuilds the account it was issued for.
func ParseToken(tokenString, secret string) (account.Account, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token payload")
	}

	switch claims.Role {
	case account.RoleClient:
		return account.ClientAccount{ID: claims.Subject, Name: claims.Name, Phone: claims.Phone}, nil
	case account.RoleStaff:
		return account.StaffAccount{ProfessionalID: claims.Subject, Name: claims.Name, Phone: claims.Phone}, nil
	}
	return nil, fmt.Errorf("unknown role %q", claims.Role)
}
