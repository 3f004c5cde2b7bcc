package jwtmw

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Verify checks the signature and expiry of tokenStr and returns the embedded user ID.
// Any failure (malformed, bad signature, wrong algorithm, expired) yields ok == false.
func (s *TokenService) Verify(tokenStr string) (userID uint, ok bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// HMACのみ許可
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return 0, false
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
