package jwtmw

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ginコンテキストに設定される認証済みユーザー情報のキーです。
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthRequired はJWTトークンを検証し、認証済みユーザーのみアクセスを許可する
// Ginミドルウェアを返します。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーを取得
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. 環境変数からシークレットキーを読み込む
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// サーバー設定不備（JWT_SECRET未設定）
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 3. JWT署名を解析・検証
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// 署名アルゴリズムを確認（HMACのみ許可）
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			// 検証エラーまたは無効なトークン
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 4. クレーム（ペイロード）を抽出
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JWTの数値はfloat64にデコードされる
				c.Set(ContextUserID, uint(sub))
			}
			if username, ok := claims["username"].(string); ok {
				c.Set(ContextUsername, username)
			}
		}
		// 5. 次のハンドラーに制御を渡す
		c.Next()
	}
}

// CurrentUserID はコンテキストから認証済みユーザーIDを取得します。
// AuthRequiredが適用されたルート内でのみ有効です。
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentUsername はコンテキストから認証済みユーザー名を取得します。
func CurrentUsername(c *gin.Context) string {
	v, ok := c.Get(ContextUsername)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}
