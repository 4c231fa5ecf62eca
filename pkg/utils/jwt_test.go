package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "operador@gestionpyme.com", "Operador")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != userID || claims.Email != "operador@gestionpyme.com" || claims.Name != "Operador" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("one-secret", time.Hour).GenerateAccessToken(uuid.New(), "a@b.com", "A")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := NewJWTManager("another-secret", time.Hour).ValidateAccessToken(token); err == nil {
		t.Fatalf("expected validation to fail under a different secret")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)
	token, err := manager.GenerateAccessToken(uuid.New(), "a@b.com", "A")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected an expired token to be rejected")
	}
}

func TestTokenExpiryPeeksWithoutVerification(t *testing.T) {
	expiry := time.Hour
	token, err := NewJWTManager("test-secret", expiry).GenerateAccessToken(uuid.New(), "a@b.com", "A")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	got, err := TokenExpiry(token)
	if err != nil {
		t.Fatalf("expiry peek failed: %v", err)
	}
	want := time.Now().Add(expiry)
	if got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
		t.Fatalf("expiry %v not within a minute of %v", got, want)
	}

	if _, err := TokenExpiry("not-a-token"); err == nil {
		t.Fatalf("expected an error for a malformed token")
	}
}
