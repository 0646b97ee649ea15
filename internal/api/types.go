// Package api はトランスポート層で共有されるレスポンス型を定義します。
package api

// ErrorResponse はエラー時の共通JSONレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は成功時の共通JSONレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse はログイン成功時のJWTトークンレスポンスです。
type TokenResponse struct {
	Token string `json:"token"`
}
