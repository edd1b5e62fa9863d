package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("secret")

	token, err := codec.Sign(42)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	userID, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if userID != 42 {
		t.Errorf("Verify returned user %d, want 42", userID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewCodec("secret").Sign(42)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := NewCodec("other-secret").Verify(token); err == nil {
		t.Error("Verify accepted a token signed with a different secret")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uint(42),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := NewCodec("secret").Verify(token); err == nil {
		t.Error("Verify accepted an expired token")
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	codec := NewCodec("secret")

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		if _, err := codec.Verify(tokenString); err == nil {
			t.Errorf("Verify accepted malformed token %q", tokenString)
		}
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uint(42),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := NewCodec("secret").Verify(token); err == nil {
		t.Error("Verify accepted an alg=none token")
	}
}

func TestVerifyMissingUserClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := NewCodec("secret").Verify(token); err == nil {
		t.Error("Verify accepted a token without a user_id claim")
	}
}
