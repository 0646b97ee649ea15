// Package authz は管理者権限の認可ポリシーとミドルウェアを提供します。
//
// 管理者の判定は2つの方法の両方を有効とします:
//   - 環境変数 ADMIN_USER_IDS のカンマ区切りユーザーID許可リストへの所属
//   - 環境変数 ADMIN_USERNAME で予約されたユーザー名（デフォルト "admin"）との一致
package authz

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	jwtmw "journal_backend/internal/platform/jwt"
)

// DefaultReservedUsername は管理者として予約されたデフォルトのユーザー名です。
const DefaultReservedUsername = "admin"

// AdminPolicy は管理者判定の認可ポリシーです。
type AdminPolicy struct {
	allowedIDs       map[uint]struct{}
	reservedUsername string
}

// NewAdminPolicy は指定された許可リストと予約ユーザー名でポリシーを生成します。
func NewAdminPolicy(allowedIDs []uint, reservedUsername string) *AdminPolicy {
	if reservedUsername == "" {
		reservedUsername = DefaultReservedUsername
	}
	ids := make(map[uint]struct{}, len(allowedIDs))
	for _, id := range allowedIDs {
		ids[id] = struct{}{}
	}
	return &AdminPolicy{allowedIDs: ids, reservedUsername: reservedUsername}
}

// NewAdminPolicyFromEnv は環境変数からポリシーを生成します。
// ADMIN_USER_IDS はカンマ区切りのユーザーIDリストです。不正な値は無視されます。
func NewAdminPolicyFromEnv() *AdminPolicy {
	var ids []uint
	for _, s := range strings.Split(os.Getenv("ADMIN_USER_IDS"), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if id, err := strconv.ParseUint(s, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return NewAdminPolicy(ids, os.Getenv("ADMIN_USERNAME"))
}

// IsAdmin は指定されたユーザーが管理者かどうかを返します。
// 許可リスト所属と予約ユーザー名の両方を判定します。
func (p *AdminPolicy) IsAdmin(userID uint, username string) bool {
	if _, ok := p.allowedIDs[userID]; ok {
		return true
	}
	return username != "" && username == p.reservedUsername
}

// AdminRequired は管理者のみアクセスを許可するGinミドルウェアを返します。
// jwtmw.AuthRequiredの後に適用する必要があります。
func AdminRequired(policy *AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := jwtmw.CurrentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !policy.IsAdmin(userID, jwtmw.CurrentUsername(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			return
		}
		c.Next()
	}
}
