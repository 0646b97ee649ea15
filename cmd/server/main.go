package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"journal_backend/internal/app/router"
	adminadapters "journal_backend/internal/feature/admin/adapters"
	adminhandler "journal_backend/internal/feature/admin/transport/handler"
	adminusecase "journal_backend/internal/feature/admin/usecase"
	statshandler "journal_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "journal_backend/internal/feature/analytics/usecase"
	authadapters "journal_backend/internal/feature/auth/adapters"
	authhandler "journal_backend/internal/feature/auth/transport/handler"
	authusecase "journal_backend/internal/feature/auth/usecase"
	goalsadapters "journal_backend/internal/feature/goals/adapters"
	goalshandler "journal_backend/internal/feature/goals/transport/handler"
	goalsusecase "journal_backend/internal/feature/goals/usecase"
	journaladapters "journal_backend/internal/feature/journal/adapters"
	journalhandler "journal_backend/internal/feature/journal/transport/handler"
	journalusecase "journal_backend/internal/feature/journal/usecase"
	leaderboardadapters "journal_backend/internal/feature/leaderboard/adapters"
	leaderboardhandler "journal_backend/internal/feature/leaderboard/transport/handler"
	leaderboardusecase "journal_backend/internal/feature/leaderboard/usecase"
	tradeadapters "journal_backend/internal/feature/trades/adapters"
	"journal_backend/internal/feature/trades/adapters/gemini"
	"journal_backend/internal/feature/trades/adapters/vision"
	"journal_backend/internal/feature/trades/adapters/webhook"
	tradehandler "journal_backend/internal/feature/trades/transport/handler"
	tradesusecase "journal_backend/internal/feature/trades/usecase"
	"journal_backend/internal/platform/authz"
	"journal_backend/internal/platform/cache"
	platformdb "journal_backend/internal/platform/db"
	platformhttp "journal_backend/internal/platform/http"
	jwtmw "journal_backend/internal/platform/jwt"
	platformredis "journal_backend/internal/platform/redis"
	"journal_backend/internal/platform/storage"
	"journal_backend/internal/shared/ratelimiter"
)

func main() {
	// .envがあれば読み込む（本番では環境変数を直接設定）
	_ = godotenv.Load()

	ctx := context.Background()

	// db
	db := platformdb.OpenDB()

	// Redis（無くてもキャッシュ・達成マーカーなしで動作する）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	tradeRepo := tradeadapters.NewTradeRepository(db)
	entryRepo := journaladapters.NewEntryRepository(db)
	profileRepo := goalsadapters.NewProfileRepository(db)
	adminRepo := adminadapters.NewAdminRepository(db)

	// リーダーボードは次のセッション開始までRedisキャッシュでラップ
	leaderboardRepo := cache.NewCachingLeaderboardRepository(
		rdb, 0, leaderboardadapters.NewLeaderboardRepository(db), "leaderboard")

	// 達成マーカー（Redisが無い場合は祝い通知なし）
	var celebrations goalsusecase.CelebrationMarker
	if rdb != nil {
		celebrations = goalsadapters.NewCelebrationRedis(rdb, "celebrated")
	}

	// Webhook通知（URL未設定なら無効）
	var notifier tradesusecase.Notifier
	if url := os.Getenv("WEBHOOK_URL"); url != "" {
		limiter := ratelimiter.NewRateLimiter(30, time.Minute)
		notifier = webhook.NewWebhookNotifier(platformhttp.NewHTTPClient(10*time.Second), url, limiter)
	}

	// スクリーンショット保存先（バケット未設定なら無効）
	var blobs tradesusecase.BlobStore
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		store, err := storage.NewGCSBlobStore(ctx, bucket)
		if err != nil {
			log.Println("[WARN] GCS unavailable. Screenshot upload disabled:", err)
		} else {
			blobs = store
		}
	}

	// OCR（任意）
	var inspector tradesusecase.ScreenshotInspector
	if os.Getenv("OCR_ENABLED") == "true" {
		v, err := vision.NewVisionInspector(ctx)
		if err != nil {
			log.Println("[WARN] Vision unavailable. OCR disabled:", err)
		} else {
			inspector = v
		}
	}

	// Gemini分析（任意、無ければ組み込みのフレーズバンク）
	var analyzer tradesusecase.Analyzer
	if os.Getenv("GEMINI_API_KEY") != "" {
		g, err := gemini.NewGeminiAnalyzer(ctx)
		if err != nil {
			log.Println("[WARN] Gemini unavailable. Using built-in phrases:", err)
		} else {
			analyzer = g
		}
	}

	// スクリーンショットのオブジェクトパス採番
	nameBlob := func(userID, tradeID uint) string {
		return fmt.Sprintf("screenshots/%d/%d-%s.png", userID, tradeID, uuid.NewString())
	}

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	tradesUC := tradesusecase.NewTradesUsecase(tradeRepo, notifier, blobs, analyzer, inspector, nameBlob)
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(tradeRepo)
	journalUC := journalusecase.NewJournalUsecase(entryRepo)
	goalsUC := goalsusecase.NewGoalsUsecase(profileRepo, tradeRepo, celebrations)
	leaderboardUC := leaderboardusecase.NewLeaderboardUsecase(leaderboardRepo)
	adminUC := adminusecase.NewAdminUsecase(adminRepo)

	// Handler
	handlers := router.Handlers{
		Auth:        authhandler.NewAuthHandler(authUC),
		Trades:      tradehandler.NewTradeHandler(tradesUC),
		Stats:       statshandler.NewStatsHandler(analyticsUC),
		Journal:     journalhandler.NewJournalHandler(journalUC),
		Goals:       goalshandler.NewGoalsHandler(goalsUC),
		Leaderboard: leaderboardhandler.NewLeaderboardHandler(leaderboardUC),
		Admin:       adminhandler.NewAdminHandler(adminUC),
	}

	// ルータ生成
	r := router.NewRouter(handlers, authz.NewAdminPolicyFromEnv())

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
