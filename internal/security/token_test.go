package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"csrhub/internal/models"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	codec := NewCodec([]byte("round-trip-secret"))
	user := &models.User{ID: 42, Email: "alice@example.com", RoleID: 3, DepartmentID: 7}

	token, err := codec.Issue(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims := codec.Verify(token)
	if claims == nil {
		t.Fatal("expected issued token to verify")
	}
	if claims.UserID != 42 || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected identity claims: %+v", claims)
	}
	if claims.RoleID != 3 || claims.DepartmentID != 7 {
		t.Fatalf("unexpected role claims: %+v", claims)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 23*time.Hour || remaining > SessionTTL {
		t.Fatalf("expected roughly 24h validity, got %v", remaining)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewCodec([]byte("signer-secret")).Issue(&models.User{ID: 1, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if claims := NewCodec([]byte("other-secret")).Verify(token); claims != nil {
		t.Fatal("token signed with a different secret must not verify")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	codec := NewCodec([]byte("tamper-secret"))
	token, err := codec.Issue(&models.User{ID: 1, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if claims := codec.Verify(tampered); claims != nil {
		t.Fatal("tampered token must not verify")
	}
}

func TestVerifyRejectsMalformedInput(t *testing.T) {
	codec := NewCodec([]byte("malformed-secret"))

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if claims := codec.Verify(raw); claims != nil {
			t.Fatalf("malformed input %q must not verify", raw)
		}
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := []byte("expired-secret")
	claims := SessionClaims{
		UserID: 1,
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if decoded := NewCodec(secret).Verify(token); decoded != nil {
		t.Fatal("expired token must not verify")
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	secret := []byte("none-secret")
	claims := SessionClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if decoded := NewCodec(secret).Verify(token); decoded != nil {
		t.Fatal("token without an HMAC signature must not verify")
	}
}
