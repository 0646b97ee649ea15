package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	jwtmw "journal_backend/internal/platform/jwt"
)

func TestAdminPolicy_IsAdmin(t *testing.T) {
	tests := []struct {
		name             string
		allowedIDs       []uint
		reservedUsername string
		userID           uint
		username         string
		want             bool
	}{
		{"allow-listed id", []uint{1, 2}, "", 2, "whoever", true},
		{"reserved default username", nil, "", 99, "admin", true},
		{"custom reserved username", nil, "root", 99, "root", true},
		{"default no longer reserved when custom set", nil, "root", 99, "admin", false},
		{"neither", []uint{1}, "", 3, "carol", false},
		{"empty username never matches", nil, "", 3, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAdminPolicy(tt.allowedIDs, tt.reservedUsername)
			if got := p.IsAdmin(tt.userID, tt.username); got != tt.want {
				t.Errorf("IsAdmin(%d, %q) = %v, want %v", tt.userID, tt.username, got, tt.want)
			}
		})
	}
}

func TestNewAdminPolicyFromEnv(t *testing.T) {
	t.Setenv("ADMIN_USER_IDS", "1, 5,not-a-number, 9")
	t.Setenv("ADMIN_USERNAME", "operator")

	p := NewAdminPolicyFromEnv()

	for _, id := range []uint{1, 5, 9} {
		if !p.IsAdmin(id, "") {
			t.Errorf("user %d should be an admin", id)
		}
	}
	if p.IsAdmin(2, "") {
		t.Error("user 2 should not be an admin")
	}
	if !p.IsAdmin(99, "operator") {
		t.Error("reserved username should be honored")
	}
}

func TestAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// jwtmwのコンテキストキーを直接設定して認証済み状態を再現する
	setup := func(policy *AdminPolicy, userID uint, username string, authenticated bool) *gin.Engine {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			if authenticated {
				c.Set(jwtmw.ContextUserID, userID)
				c.Set(jwtmw.ContextUsername, username)
			}
		}, AdminRequired(policy), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	get := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("unauthenticated gets 401", func(t *testing.T) {
		w := get(setup(NewAdminPolicy([]uint{1}, ""), 0, "", false))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("authenticated non-admin gets 403", func(t *testing.T) {
		w := get(setup(NewAdminPolicy([]uint{1}, ""), 2, "carol", true))
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
		}
	})

	t.Run("allow-listed admin passes", func(t *testing.T) {
		w := get(setup(NewAdminPolicy([]uint{1}, ""), 1, "carol", true))
		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("reserved username passes", func(t *testing.T) {
		w := get(setup(NewAdminPolicy(nil, ""), 42, "admin", true))
		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})
}
