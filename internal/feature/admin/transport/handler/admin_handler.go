// Package handler はadminフィーチャーのHTTPハンドラーを提供します。
// ルーターで管理者認可ミドルウェアの配下に配置される前提です。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"journal_backend/internal/api"
	"journal_backend/internal/feature/admin/transport/http/dto"
	"journal_backend/internal/feature/admin/usecase"
	tradeentity "journal_backend/internal/feature/trades/domain/entity"
)

// AdminUsecase は管理者操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AdminUsecase interface {
	ListUsersWithStats(ctx context.Context) ([]usecase.UserWithStats, error)
	ListAllTrades(ctx context.Context, limit int) ([]tradeentity.Trade, error)
	DeleteTradesForUser(ctx context.Context, targetUserID uint) (int64, error)
	DeleteEntriesForUser(ctx context.Context, targetUserID uint) (int64, error)
	DeleteUserEntirely(ctx context.Context, targetUserID uint) error
}

// AdminHandler は管理者操作のHTTPリクエストを処理します。
type AdminHandler struct {
	uc AdminUsecase
}

// NewAdminHandler は指定されたusecaseでAdminHandlerの新しいインスタンスを生成します。
func NewAdminHandler(uc AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers は全ユーザーとそれぞれの取引統計を返します。
//
// エンドポイント: GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.ListUsersWithStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.AdminUserRes, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, dto.AdminUserRes{
			ID:           u.User.ID,
			Email:        u.User.Email,
			Username:     u.User.Username,
			DisplayName:  u.User.DisplayName,
			CreatedAt:    u.User.CreatedAt.Format(time.RFC3339),
			TotalTrades:  u.Stats.TotalTrades,
			NetProfit:    u.Stats.NetProfit,
			WinRate:      u.Stats.WinRate,
			ProfitFactor: u.Stats.ProfitFactor,
			MaxDrawdown:  u.Stats.MaxDrawdown,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListTrades は全ユーザーの取引を新しい順で返します。
//
// エンドポイント: GET /admin/trades?limit=200
func (h *AdminHandler) ListTrades(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))

	trades, err := h.uc.ListAllTrades(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.AdminTradeRes, 0, len(trades))
	for i := range trades {
		t := &trades[i]
		out = append(out, dto.AdminTradeRes{
			ID:         t.ID,
			UserID:     t.UserID,
			Symbol:     t.Symbol,
			Side:       string(t.Side),
			LotSize:    t.LotSize,
			EntryPrice: t.EntryPrice,
			ExitPrice:  t.DisplayExitPrice(),
			Profit:     t.Profit,
			OccurredAt: t.OccurredAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}

// DeleteUserTrades は対象ユーザーの全取引を削除します。
//
// エンドポイント: DELETE /admin/users/:id/trades
func (h *AdminHandler) DeleteUserTrades(c *gin.Context) {
	h.bulkDelete(c, h.uc.DeleteTradesForUser)
}

// DeleteUserEntries は対象ユーザーの全ジャーナルエントリを削除します。
//
// エンドポイント: DELETE /admin/users/:id/journal
func (h *AdminHandler) DeleteUserEntries(c *gin.Context) {
	h.bulkDelete(c, h.uc.DeleteEntriesForUser)
}

// bulkDelete はユーザー単位の一括削除操作の共通処理です。
func (h *AdminHandler) bulkDelete(c *gin.Context, del func(ctx context.Context, targetUserID uint) (int64, error)) {
	targetID, ok := targetUserID(c)
	if !ok {
		return
	}

	deleted, err := del(c.Request.Context(), targetID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.AdminDeleteRes{UserID: targetID, Deleted: deleted})
}

// DeleteUser は対象ユーザーを関連データごと削除します。
//
// エンドポイント: DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	targetID, ok := targetUserID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteUserEntirely(c.Request.Context(), targetID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// targetUserID はパスパラメーターから対象ユーザーIDを取り出します。
func targetUserID(c *gin.Context) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return 0, false
	}
	return uint(raw), true
}
