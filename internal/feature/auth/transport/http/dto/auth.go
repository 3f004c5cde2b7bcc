// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は/auth/registerエンドポイントのリクエストボディを表します。
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,maxbytes=72"`
}

// LoginReq は/auth/loginエンドポイントのリクエストボディを表します。
// 登録時と同じバリデーションを適用します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,maxbytes=72"`
}
