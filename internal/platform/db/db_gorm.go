package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "journal_backend/internal/feature/auth/domain/entity"
	goalsentity "journal_backend/internal/feature/goals/domain/entity"
	journalentity "journal_backend/internal/feature/journal/domain/entity"
	tradesentity "journal_backend/internal/feature/trades/domain/entity"
)

// OpenDB は環境変数の接続情報でPostgreSQLに接続します。
// 起動直後のDB未起動に備え、最大60秒までリトライします。
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=Local",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Trade, JournalEntry, Profile）
		if err := db.AutoMigrate(
			&authentity.User{},
			&tradesentity.Trade{},
			&journalentity.Entry{},
			&goalsentity.Profile{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
