package crypto

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskdeck/taskdeck-go/internal/model"
)

var testIdentity = model.Identity{
	UserID: 42,
	Email:  "alice@example.com",
	Role:   model.RoleUser,
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(testIdentity, "test-secret")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(testIdentity, secret)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != testIdentity.UserID {
		t.Errorf("ValidateToken() UserID = %d, want %d", claims.UserID, testIdentity.UserID)
	}
	if claims.Email != testIdentity.Email {
		t.Errorf("ValidateToken() Email = %q, want %q", claims.Email, testIdentity.Email)
	}
	if claims.Role != testIdentity.Role {
		t.Errorf("ValidateToken() Role = %q, want %q", claims.Role, testIdentity.Role)
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenTampered(t *testing.T) {
	token, err := GenerateToken(testIdentity, "test-secret")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	// Corrupt the signature segment.
	parts := strings.Split(token, ".")
	parts[2] = "AAAA" + parts[2][4:]

	_, err = ValidateToken(strings.Join(parts, "."), "test-secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testIdentity, "correct-secret")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "wrong-secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func signTestClaims(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return tokenString
}

func TestValidateTokenExpired(t *testing.T) {
	secret := "test-secret"
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID: 42,
		Email:  "alice@example.com",
		Role:   model.RoleUser,
	}

	_, err := ValidateToken(signTestClaims(t, claims, secret), secret)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	secret := "test-secret"
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wrong-issuer",
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 42,
		Role:   model.RoleUser,
	}

	_, err := ValidateToken(signTestClaims(t, claims, secret), secret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenWrongAudience(t *testing.T) {
	secret := "test-secret"
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{"wrong-audience"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 42,
		Role:   model.RoleUser,
	}

	_, err := ValidateToken(signTestClaims(t, claims, secret), secret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenUnknownRole(t *testing.T) {
	secret := "test-secret"
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 42,
		Role:   model.Role("SUPERUSER"),
	}

	_, err := ValidateToken(signTestClaims(t, claims, secret), secret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid for unknown role", err)
	}
}
