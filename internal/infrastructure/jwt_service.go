package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionUser is the identity carried by a session token and mirrored into
// the session view on each request.
type SessionUser struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// JWTService mints and parses the stateless session tokens. The secret and
// lifetime are injected at construction; nothing is read from the
// environment at call time.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// GenerateToken mints an HS256 token with a fixed absolute expiry. There is
// no sliding renewal: after expiry the holder must authenticate again.
func (j *JWTService) GenerateToken(user SessionUser) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email: user.Email,
		Name:  user.Name,
	})

	return token.SignedString(j.secretKey)
}

// ParseToken maps a token back to the identity it carries, together with the
// absolute expiry. Expired or tampered tokens fail with ErrInvalidToken.
func (j *JWTService) ParseToken(tokenString string) (SessionUser, time.Time, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return SessionUser{}, time.Time{}, err
	}
	if !token.Valid {
		return SessionUser{}, time.Time{}, ErrInvalidToken
	}

	return SessionUser{
		Id:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, claims.ExpiresAt.Time, nil
}
