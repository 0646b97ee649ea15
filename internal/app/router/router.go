package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	adminhandler "journal_backend/internal/feature/admin/transport/handler"
	statshandler "journal_backend/internal/feature/analytics/transport/handler"
	authhandler "journal_backend/internal/feature/auth/transport/handler"
	goalshandler "journal_backend/internal/feature/goals/transport/handler"
	journalhandler "journal_backend/internal/feature/journal/transport/handler"
	leaderboardhandler "journal_backend/internal/feature/leaderboard/transport/handler"
	tradehandler "journal_backend/internal/feature/trades/transport/handler"
	"journal_backend/internal/platform/authz"
	platformhandler "journal_backend/internal/platform/http/handler"
	jwtmw "journal_backend/internal/platform/jwt"
)

// Handlers はルーターに登録する全ハンドラーの束です。
type Handlers struct {
	Auth        *authhandler.AuthHandler
	Trades      *tradehandler.TradeHandler
	Stats       *statshandler.StatsHandler
	Journal     *journalhandler.JournalHandler
	Goals       *goalshandler.GoalsHandler
	Leaderboard *leaderboardhandler.LeaderboardHandler
	Admin       *adminhandler.AdminHandler
}

// NewRouter は全エンドポイントを登録したgin.Engineを生成します。
func NewRouter(h Handlers, adminPolicy *authz.AdminPolicy) *gin.Engine {
	r := gin.Default()

	// ブラウザーのフロントエンドから呼び出すためCORSを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", h.Auth.Login)

	// 認証必須のルート
	auth := r.Group("/")
	// リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		// 取引
		auth.POST("/trades", h.Trades.Create)
		auth.GET("/trades", h.Trades.List)
		auth.GET("/trades/:id", h.Trades.Get)
		auth.PUT("/trades/:id", h.Trades.Update)
		auth.DELETE("/trades/:id", h.Trades.Delete)
		auth.POST("/trades/:id/analysis", h.Trades.GenerateAnalysis)
		auth.POST("/trades/:id/screenshot", h.Trades.UploadScreenshot)

		// 統計・チャート
		auth.GET("/stats", h.Stats.GetStats)
		auth.GET("/stats/equity", h.Stats.GetEquityCurve)
		auth.GET("/stats/assets", h.Stats.GetAssetPerformance)
		auth.GET("/stats/distribution", h.Stats.GetDistribution)
		auth.GET("/stats/calendar", h.Stats.GetCalendar)

		// ジャーナル
		auth.POST("/journal", h.Journal.Create)
		auth.GET("/journal", h.Journal.List)
		auth.PUT("/journal/:id", h.Journal.Update)
		auth.DELETE("/journal/:id", h.Journal.Delete)
		auth.GET("/journal/streak", h.Journal.GetStreak)

		// 目標・クエスト
		auth.GET("/goals", h.Goals.GetGoals)
		auth.PUT("/goals", h.Goals.UpdateGoals)
		auth.POST("/quest/activate", h.Goals.ActivateQuest)
		auth.POST("/quest/cancel", h.Goals.CancelQuest)
		auth.GET("/quest/progress", h.Goals.GetQuestProgress)

		// リーダーボード
		auth.GET("/leaderboard", h.Leaderboard.GetLeaderboard)
	}

	// 管理者専用のルート（JWT認証 + 管理者認可）
	admin := r.Group("/admin")
	admin.Use(jwtmw.AuthRequired(), authz.AdminRequired(adminPolicy))
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/trades", h.Admin.ListTrades)
		admin.DELETE("/users/:id", h.Admin.DeleteUser)
		admin.DELETE("/users/:id/trades", h.Admin.DeleteUserTrades)
		admin.DELETE("/users/:id/journal", h.Admin.DeleteUserEntries)
	}

	return r
}
