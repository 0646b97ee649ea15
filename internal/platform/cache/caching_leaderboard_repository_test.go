package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"journal_backend/internal/feature/leaderboard/domain/entity"
)

// mockLeaderboardRepository はテスト用のLeaderboardRepositoryモック実装です。
type mockLeaderboardRepository struct {
	topFn func(ctx context.Context, limit int) ([]entity.Row, error)
}

// TopByNetProfit はモックのtop関数を呼び出します。
func (m *mockLeaderboardRepository) TopByNetProfit(ctx context.Context, limit int) ([]entity.Row, error) {
	if m.topFn != nil {
		return m.topFn(ctx, limit)
	}
	return nil, nil
}

// TestNewCachingLeaderboardRepository_Defaults はデフォルトのnamespaceが設定されることを検証します。
func TestNewCachingLeaderboardRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingLeaderboardRepository(nil, 0, &mockLeaderboardRepository{}, "")
	if repo.namespace != "leaderboard" {
		t.Errorf("expected namespace %q, got %q", "leaderboard", repo.namespace)
	}

	custom := NewCachingLeaderboardRepository(nil, time.Minute, &mockLeaderboardRepository{}, "custom")
	if custom.namespace != "custom" {
		t.Errorf("expected namespace %q, got %q", "custom", custom.namespace)
	}
	if custom.ttl != time.Minute {
		t.Errorf("expected TTL %v, got %v", time.Minute, custom.ttl)
	}
}

// TestCachingLeaderboardRepository_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部リポジトリを直接呼び出すことを検証します。
func TestCachingLeaderboardRepository_NilRedis(t *testing.T) {
	t.Parallel()

	expected := []entity.Row{
		{UserID: 1, Username: "alice", NetProfit: 120, TradeCount: 4, Wins: 3},
	}

	inner := &mockLeaderboardRepository{
		topFn: func(ctx context.Context, limit int) ([]entity.Row, error) {
			return expected, nil
		},
	}

	repo := NewCachingLeaderboardRepository(nil, time.Minute, inner, "leaderboard")

	rows, err := repo.TopByNetProfit(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(expected) {
		t.Errorf("expected %d rows, got %d", len(expected), len(rows))
	}
}

// TestCachingLeaderboardRepository_CacheHit はキャッシュヒット時にRedisからデータを返し、内部リポジトリを呼ばないことを検証します。
func TestCachingLeaderboardRepository_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.Row{
		{UserID: 1, Username: "alice", NetProfit: 120, TradeCount: 4, Wins: 3},
		{UserID: 2, Username: "bob", NetProfit: -30, TradeCount: 2, Wins: 0},
	}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("leaderboard:top:50").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockLeaderboardRepository{
		topFn: func(ctx context.Context, limit int) ([]entity.Row, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingLeaderboardRepository(rdb, time.Minute, inner, "leaderboard")

	rows, err := repo.TopByNetProfit(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(rows) != 2 || rows[0].Username != "alice" {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingLeaderboardRepository_CacheMiss はキャッシュミス時に内部リポジトリへフォールバックし、結果をキャッシュすることを検証します。
func TestCachingLeaderboardRepository_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	fresh := []entity.Row{
		{UserID: 1, Username: "alice", NetProfit: 120, TradeCount: 4, Wins: 3},
	}
	freshJSON, _ := json.Marshal(fresh)

	mock.ExpectGet("leaderboard:top:50").RedisNil()
	mock.ExpectSet("leaderboard:top:50", freshJSON, time.Minute).SetVal("OK")

	inner := &mockLeaderboardRepository{
		topFn: func(ctx context.Context, limit int) ([]entity.Row, error) {
			return fresh, nil
		},
	}

	repo := NewCachingLeaderboardRepository(rdb, time.Minute, inner, "leaderboard")

	rows, err := repo.TopByNetProfit(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Username != "alice" {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingLeaderboardRepository_InnerError は内部リポジトリのエラーがそのまま伝播することを検証します。
func TestCachingLeaderboardRepository_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("leaderboard:top:50").RedisNil()

	wantErr := errors.New("db down")
	inner := &mockLeaderboardRepository{
		topFn: func(ctx context.Context, limit int) ([]entity.Row, error) {
			return nil, wantErr
		},
	}

	repo := NewCachingLeaderboardRepository(rdb, time.Minute, inner, "leaderboard")

	if _, err := repo.TopByNetProfit(context.Background(), 50); !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

// TestCachingLeaderboardRepository_CorruptedCache は壊れたキャッシュエントリを削除して内部リポジトリへフォールバックすることを検証します。
func TestCachingLeaderboardRepository_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	fresh := []entity.Row{
		{UserID: 1, Username: "alice", NetProfit: 120, TradeCount: 4, Wins: 3},
	}
	freshJSON, _ := json.Marshal(fresh)

	mock.ExpectGet("leaderboard:top:50").SetVal("{not json")
	mock.ExpectDel("leaderboard:top:50").SetVal(1)
	mock.ExpectSet("leaderboard:top:50", freshJSON, time.Minute).SetVal("OK")

	inner := &mockLeaderboardRepository{
		topFn: func(ctx context.Context, limit int) ([]entity.Row, error) {
			return fresh, nil
		},
	}

	repo := NewCachingLeaderboardRepository(rdb, time.Minute, inner, "leaderboard")

	rows, err := repo.TopByNetProfit(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}
