package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yungbote/gradadmin-backend/internal/data/repos/testutil"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenVerifier(t *testing.T) {
	const secret = "test-secret"
	verifier := NewTokenVerifier(testutil.Logger(t), secret)
	userID := uuid.New()

	rd, err := verifier.Verify(signToken(t, secret, jwt.MapClaims{
		"sub":  userID.String(),
		"name": "Dean Office",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if rd.UserID != userID {
		t.Fatalf("UserID = %s, want %s", rd.UserID, userID)
	}
	if rd.DisplayName != "Dean Office" {
		t.Fatalf("DisplayName = %q", rd.DisplayName)
	}
}

func TestTokenVerifierRejects(t *testing.T) {
	const secret = "test-secret"
	verifier := NewTokenVerifier(testutil.Logger(t), secret)

	if _, err := verifier.Verify(signToken(t, "other-secret", jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})); err == nil {
		t.Fatal("token signed with the wrong secret should fail")
	}

	if _, err := verifier.Verify(signToken(t, secret, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})); err == nil {
		t.Fatal("expired token should fail")
	}

	if _, err := verifier.Verify(signToken(t, secret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})); err == nil {
		t.Fatal("non-uuid subject should fail")
	}

	if _, err := verifier.Verify("not.a.token"); err == nil {
		t.Fatal("garbage token should fail")
	}
}
