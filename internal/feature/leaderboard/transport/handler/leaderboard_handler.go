// Package handler はleaderboardフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"journal_backend/internal/api"
	"journal_backend/internal/feature/leaderboard/domain/entity"
	"journal_backend/internal/feature/leaderboard/transport/http/dto"
)

// LeaderboardUsecase はリーダーボード取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type LeaderboardUsecase interface {
	GetLeaderboard(ctx context.Context, limit int) ([]entity.Row, error)
}

// LeaderboardHandler はリーダーボード取得のHTTPリクエストを処理します。
type LeaderboardHandler struct {
	uc LeaderboardUsecase
}

// NewLeaderboardHandler は指定されたusecaseでLeaderboardHandlerの新しいインスタンスを生成します。
func NewLeaderboardHandler(uc LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

// GetLeaderboard は純損益の降順で並んだランキングを返します。
//
// エンドポイント: GET /leaderboard?limit=50
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, err := h.uc.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.LeaderboardEntryRes, 0, len(rows))
	for i := range rows {
		out = append(out, dto.LeaderboardEntryRes{
			Rank:       i + 1,
			Username:   rows[i].Username,
			NetProfit:  rows[i].NetProfit,
			TradeCount: rows[i].TradeCount,
			WinRate:    rows[i].WinRate(),
		})
	}
	c.JSON(http.StatusOK, out)
}
