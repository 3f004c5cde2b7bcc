package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user ID.
const ContextUserID = "userID"

const (
	msgTokenMissing = "unauthorized, token missing"
	msgTokenInvalid = "unauthorized, invalid or expired token"
)

// TokenVerifier resolves a bearer token to a user ID.
type TokenVerifier interface {
	Verify(token string) (uint, bool)
}

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーを取得
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgTokenMissing})
			return
		}

		// 2. "Bearer " プレフィックスは任意
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 3. 署名と有効期限を検証
		userID, ok := verifier.Verify(tokenStr)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgTokenInvalid})
			return
		}

		// 4. 後続のハンドラーへ
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID stored by AuthRequired.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
