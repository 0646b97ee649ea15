// Package handler はgoalsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"journal_backend/internal/api"
	"journal_backend/internal/feature/goals/transport/http/dto"
	"journal_backend/internal/feature/goals/usecase"
	jwtmw "journal_backend/internal/platform/jwt"
)

// GoalsUsecase は目標設定とクエスト操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type GoalsUsecase interface {
	GetGoals(ctx context.Context, userID uint) (usecase.GoalView, error)
	UpdateGoals(ctx context.Context, userID uint, portSize, goalPercent float64) (usecase.GoalView, error)
	ActivateQuest(ctx context.Context, userID uint, portSize, goalPercent float64) (usecase.GoalView, error)
	CancelQuest(ctx context.Context, userID uint) (usecase.GoalView, error)
	GetQuestProgress(ctx context.Context, userID uint) (usecase.QuestProgress, error)
}

// GoalsHandler は目標設定とクエスト操作のHTTPリクエストを処理します。
type GoalsHandler struct {
	uc GoalsUsecase
}

// NewGoalsHandler は指定されたusecaseでGoalsHandlerの新しいインスタンスを生成します。
func NewGoalsHandler(uc GoalsUsecase) *GoalsHandler {
	return &GoalsHandler{uc: uc}
}

// GetGoals は目標設定と導出値を返します。プロフィール未作成の場合は
// デフォルト値で作成されます。
//
// エンドポイント: GET /goals
func (h *GoalsHandler) GetGoals(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	view, err := h.uc.GetGoals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toGoalsRes(view))
}

// UpdateGoals は口座サイズと目標パーセントを更新します。
//
// エンドポイント: PUT /goals
func (h *GoalsHandler) UpdateGoals(c *gin.Context) {
	h.applyGoals(c, h.uc.UpdateGoals)
}

// ActivateQuest はクエストを有効化し、目標設定を同時に保存します（冪等）。
//
// エンドポイント: POST /quest/activate
func (h *GoalsHandler) ActivateQuest(c *gin.Context) {
	h.applyGoals(c, h.uc.ActivateQuest)
}

// applyGoals はUpdateGoalsとActivateQuestの共通処理です。
func (h *GoalsHandler) applyGoals(c *gin.Context, apply func(ctx context.Context, userID uint, portSize, goalPercent float64) (usecase.GoalView, error)) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.GoalsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("goals validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	view, err := apply(c.Request.Context(), userID, req.PortSize, req.ProfitGoalPercent)
	if err != nil {
		status, msg := mapError(err)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, toGoalsRes(view))
}

// CancelQuest はクエストを無効化します。目標設定は保持されます（冪等）。
//
// エンドポイント: POST /quest/cancel
func (h *GoalsHandler) CancelQuest(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	view, err := h.uc.CancelQuest(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toGoalsRes(view))
}

// GetQuestProgress は当日の進捗・ポイント集計・達成通知フラグを返します。
//
// エンドポイント: GET /quest/progress
func (h *GoalsHandler) GetQuestProgress(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	p, err := h.uc.GetQuestProgress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.QuestProgressRes{
		Active:         p.Active,
		DailyTarget:    p.DailyTarget,
		NetProfitToday: p.NetProfitToday,
		Progress:       p.Progress,
		Completed:      p.Completed,
		Celebrate:      p.Celebrate,
		Points: dto.PointsRes{
			Today:     p.Points.Today,
			ThisWeek:  p.Points.ThisWeek,
			ThisMonth: p.Points.ThisMonth,
			Total:     p.Points.Total,
		},
	})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidPortSize), errors.Is(err, usecase.ErrInvalidGoalPercent):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusBadGateway, err.Error()
	}
}

func toGoalsRes(v usecase.GoalView) dto.GoalsRes {
	return dto.GoalsRes{
		PortSize:          v.PortSize,
		ProfitGoalPercent: v.ProfitGoalPercent,
		MonthlyGoal:       v.MonthlyGoal,
		DailyTarget:       v.DailyTarget,
		QuestActive:       v.QuestActive,
	}
}
