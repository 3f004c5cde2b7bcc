package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_Verify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", 24*time.Hour)
	for _, id := range []uint{1, 42, 999} {
		tokenStr, err := svc.GenerateToken(id)
		assert.NoError(t, err)

		got, ok := svc.Verify(tokenStr)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"
	svc := NewTokenService(secret, time.Hour)

	expiredSvc := NewTokenService(secret, 24*time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }
	expired, _ := expiredSvc.GenerateToken(1)

	otherSecret, _ := NewTokenService("other-secret", time.Hour).GenerateToken(1)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, _ := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	wrongAlg, _ := hs512.SignedString([]byte(secret))

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).SignedString([]byte(secret))
	badSub, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	zeroSub, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "0",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"expired but correctly signed", expired},
		{"wrong secret", otherSecret},
		{"none algorithm", unsigned},
		{"unexpected hmac variant", wrongAlg},
		{"missing exp", noExp},
		{"non numeric subject", badSub},
		{"zero subject", zeroSub},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := svc.Verify(tt.token)
			assert.False(t, ok)
			assert.Zero(t, id)
		})
	}
}
