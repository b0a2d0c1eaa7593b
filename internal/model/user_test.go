package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"USER", "ADMIN"} {
		role, err := ParseRole(valid)
		if err != nil {
			t.Errorf("ParseRole(%q) unexpected error: %v", valid, err)
		}
		if !role.Valid() {
			t.Errorf("ParseRole(%q) produced invalid role", valid)
		}
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	// Near-misses must be rejected, not fall through to non-admin.
	for _, invalid := range []string{"", "user", "admin", "Admin", "SUPERUSER"} {
		if _, err := ParseRole(invalid); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("ParseRole(%q) error = %v, want ErrInvalidRole", invalid, err)
		}
	}
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user := User{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleUser,
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	if strings.Contains(string(data), "secret") {
		t.Errorf("serialized user leaks password hash: %s", data)
	}
}
