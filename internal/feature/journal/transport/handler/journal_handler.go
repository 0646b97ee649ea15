// Package handler はjournalフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"journal_backend/internal/api"
	"journal_backend/internal/feature/journal/domain/entity"
	"journal_backend/internal/feature/journal/transport/http/dto"
	"journal_backend/internal/feature/journal/usecase"
	jwtmw "journal_backend/internal/platform/jwt"
)

// dateLayout はTradingDayの入出力フォーマットです。
const dateLayout = "2006-01-02"

// JournalUsecase はジャーナル操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type JournalUsecase interface {
	Create(ctx context.Context, entry *entity.Entry) error
	List(ctx context.Context, userID uint, limit int) ([]entity.Entry, error)
	Update(ctx context.Context, entry *entity.Entry) error
	Delete(ctx context.Context, id, userID uint) error
	GetStreakStats(ctx context.Context, userID uint) (usecase.StreakStats, error)
}

// JournalHandler はジャーナル操作のHTTPリクエストを処理します。
type JournalHandler struct {
	uc JournalUsecase
}

// NewJournalHandler は指定されたusecaseでJournalHandlerの新しいインスタンスを生成します。
func NewJournalHandler(uc JournalUsecase) *JournalHandler {
	return &JournalHandler{uc: uc}
}

// Create はジャーナルエントリを新規登録します。
//
// エンドポイント: POST /journal
func (h *JournalHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.EntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("journal entry validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	entry := toEntity(&req, userID)
	if err := h.uc.Create(c.Request.Context(), entry); err != nil {
		status, msg := mapError(err)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusCreated, toResponse(entry))
}

// List は認証済みユーザーのエントリ一覧を新しい順で返します。
//
// エンドポイント: GET /journal?limit=100
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.uc.List(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.EntryRes, 0, len(entries))
	for i := range entries {
		out = append(out, *toResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update はエントリの編集可能フィールドを上書きします。
//
// エンドポイント: PUT /journal/:id
func (h *JournalHandler) Update(c *gin.Context) {
	userID, id, ok := h.authAndID(c)
	if !ok {
		return
	}

	var req dto.EntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("journal entry validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	entry := toEntity(&req, userID)
	entry.ID = id
	if err := h.uc.Update(c.Request.Context(), entry); err != nil {
		status, msg := mapError(err)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Delete はエントリを削除します。
//
// エンドポイント: DELETE /journal/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	userID, id, ok := h.authAndID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id, userID); err != nil {
		status, msg := mapError(err)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// GetStreak は継続記録とプラン遵守率を返します。
//
// エンドポイント: GET /journal/streak
func (h *JournalHandler) GetStreak(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	s, err := h.uc.GetStreakStats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.StreakRes{
		Streak:            s.Streak,
		TotalEntries:      s.TotalEntries,
		FollowedPlanCount: s.FollowedPlanCount,
		PlanAdherenceRate: s.PlanAdherenceRate,
	})
}

func (h *JournalHandler) authAndID(c *gin.Context) (userID, id uint, ok bool) {
	userID, ok = jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return 0, 0, false
	}
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid entry id"})
		return 0, 0, false
	}
	return userID, uint(raw), true
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrEntryNotFound):
		return http.StatusNotFound, "journal entry not found"
	case errors.Is(err, usecase.ErrInvalidTitle), errors.Is(err, usecase.ErrInvalidMood):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusBadGateway, err.Error()
	}
}

func toEntity(req *dto.EntryReq, userID uint) *entity.Entry {
	var day time.Time
	if req.TradingDay != "" {
		// フォーマットはbindingで検証済み
		day, _ = time.ParseInLocation(dateLayout, req.TradingDay, time.Local)
	}
	return &entity.Entry{
		UserID:       userID,
		Title:        req.Title,
		Content:      req.Content,
		Mood:         entity.Mood(req.Mood),
		Tags:         req.Tags,
		TradingDay:   day,
		FollowedPlan: req.FollowedPlan,
	}
}

func toResponse(e *entity.Entry) *dto.EntryRes {
	return &dto.EntryRes{
		ID:           e.ID,
		Title:        e.Title,
		Content:      e.Content,
		Mood:         string(e.Mood),
		Tags:         e.Tags,
		TradingDay:   e.TradingDay.Format(dateLayout),
		FollowedPlan: e.FollowedPlan,
	}
}
