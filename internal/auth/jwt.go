package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rsaliba/exchange-service/internal/domain"
)

// Claims carries the subject id and the binary teller flag. Nothing else is
// held server-side: every call re-validates the token.
type Claims struct {
	UserID   string `json:"user_id"`
	IsTeller bool   `json:"is_teller"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) GenerateToken(userID string, isTeller bool) (string, error) {
	claims := &Claims{
		UserID:   userID,
		IsTeller: isTeller,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "exchange-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken returns the caller encoded in the token, or
// domain.ErrUnauthenticated for anything missing, malformed or expired.
func (s *TokenService) ValidateToken(tokenString string) (domain.Caller, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Caller{}, domain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Caller{}, domain.ErrUnauthenticated
	}

	return domain.Caller{ID: claims.UserID, IsTeller: claims.IsTeller}, nil
}
