package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskdeck/taskdeck-go/internal/model"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

const (
	tokenIssuer   = "taskdeck"
	tokenAudience = "taskdeck-api"
)

// TokenLifetime is the fixed validity window of an issued token. There
// is no refresh mechanism; expiry forces re-login.
const TokenLifetime = 7 * 24 * time.Hour

// Claims represents the JWT claims carried by a taskdeck session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64      `json:"user_id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
}

// GenerateToken creates a signed JWT for the given identity.
func GenerateToken(ident model.Identity, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: ident.UserID,
		Email:  ident.Email,
		Role:   ident.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string. It distinguishes
// an expired token (ErrTokenExpired) from one that is malformed, has a
// bad signature, or carries claims outside the closed role set
// (ErrTokenInvalid).
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
