// Package handler はtradesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"journal_backend/internal/api"
	"journal_backend/internal/feature/analytics/domain/tradingday"
	"journal_backend/internal/feature/trades/domain/entity"
	"journal_backend/internal/feature/trades/transport/http/dto"
	"journal_backend/internal/feature/trades/usecase"
	jwtmw "journal_backend/internal/platform/jwt"
)

// TradesUsecase は取引操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TradesUsecase interface {
	Create(ctx context.Context, trade *entity.Trade) error
	List(ctx context.Context, userID uint, limit int) ([]entity.Trade, error)
	Get(ctx context.Context, id, userID uint) (*entity.Trade, error)
	Update(ctx context.Context, trade *entity.Trade) error
	Delete(ctx context.Context, id, userID uint) error
	GenerateAnalysis(ctx context.Context, id, userID uint) (string, error)
	UploadScreenshot(ctx context.Context, id, userID uint, data []byte, contentType string) (url, detectedText string, err error)
}

// TradeHandler は取引操作のHTTPリクエストを処理します。
type TradeHandler struct {
	uc TradesUsecase
}

// NewTradeHandler は指定されたusecaseでTradeHandlerの新しいインスタンスを生成します。
func NewTradeHandler(uc TradesUsecase) *TradeHandler {
	return &TradeHandler{uc: uc}
}

// Create は取引を新規登録します。
//
// エンドポイント: POST /trades
func (h *TradeHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.TradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("trade validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	trade := toEntity(&req, userID)
	if err := h.uc.Create(c.Request.Context(), trade); err != nil {
		status, msg := mapError(err)
		slog.Warn("trade creation failed", "error", err, "user_id", userID)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusCreated, toResponse(trade))
}

// List は認証済みユーザーの取引一覧を新しい順で返します。
//
// エンドポイント: GET /trades?limit=200
func (h *TradeHandler) List(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	// 文字列を整数に変換（不正な値はデフォルトにフォールバック）
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))

	trades, err := h.uc.List(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.TradeRes, 0, len(trades))
	for i := range trades {
		out = append(out, *toResponse(&trades[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は取引1件を返します。
//
// エンドポイント: GET /trades/:id
func (h *TradeHandler) Get(c *gin.Context) {
	userID, id, ok := h.authAndID(c)
	if !ok {
		return
	}

	trade, err := h.uc.Get(c.Request.Context(), id, userID)
	if err != nil {
		status, msg := mapError(err)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, toResponse(trade))
}

// Update は取引の編集可能フィールドを全て上書きします。
// 他ユーザーの取引に対しては404を返し、何も変更しません。
//
// エンドポイント: PUT /trades/:id
func (h *TradeHandler) Update(c *gin.Context) {
	userID, id, ok := h.authAndID(c)
	if !ok {
		return
	}

	var req dto.TradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("trade validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	trade := toEntity(&req, userID)
	trade.ID = id
	if err := h.uc.Update(c.Request.Context(), trade); err != nil {
		status, msg := mapError(err)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Delete は取引を削除します。
//
// エンドポイント: DELETE /trades/:id
func (h *TradeHandler) Delete(c *gin.Context) {
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

// GenerateAnalysis は取引の分析テキストを生成して保存します。
// 再実行すると既存の分析を明示的に上書きします。
//
// エンドポイント: POST /trades/:id/analysis
func (h *TradeHandler) GenerateAnalysis(c *gin.Context) {
	userID, id, ok := h.authAndID(c)
	if !ok {
		return
	}

	analysis, err := h.uc.GenerateAnalysis(c.Request.Context(), id, userID)
	if err != nil {
		status, msg := mapError(err)
		slog.Warn("analysis generation failed", "error", err, "trade_id", id)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, dto.AnalysisRes{TradeID: id, Analysis: analysis})
}

// UploadScreenshot はスクリーンショット画像をアップロードして取引に紐付けます。
//
// エンドポイント: POST /trades/:id/screenshot
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *TradeHandler) UploadScreenshot(c *gin.Context) {
	userID, id, ok := h.authAndID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("screenshot file missing", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open screenshot file", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close screenshot file", "error", err)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read screenshot data", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	url, text, err := h.uc.UploadScreenshot(c.Request.Context(), id, userID, data, file.Header.Get("Content-Type"))
	if err != nil {
		status, msg := mapError(err)
		slog.Error("screenshot upload failed", "error", err, "trade_id", id)
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, dto.ScreenshotRes{TradeID: id, URL: url, DetectedText: text})
}

// authAndID は認証済みユーザーIDとパスパラメータの取引IDを取得します。
// 失敗時はレスポンスを書き込み、falseを返します。
func (h *TradeHandler) authAndID(c *gin.Context) (userID, id uint, ok bool) {
	userID, ok = jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return 0, 0, false
	}
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid trade id"})
		return 0, 0, false
	}
	return userID, uint(raw), true
}

// mapError はユースケースのエラーをHTTPステータスとメッセージに変換します。
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrTradeNotFound):
		return http.StatusNotFound, "trade not found"
	case errors.Is(err, usecase.ErrInvalidSymbol),
		errors.Is(err, usecase.ErrInvalidSide),
		errors.Is(err, usecase.ErrInvalidLotSize),
		errors.Is(err, usecase.ErrEmptyScreenshot),
		errors.Is(err, usecase.ErrScreenshotTooLarge):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusBadGateway, err.Error()
	}
}

// toEntity はリクエストDTOをドメインエンティティに変換します。
func toEntity(req *dto.TradeReq, userID uint) *entity.Trade {
	return &entity.Trade{
		UserID:     userID,
		Symbol:     req.Symbol,
		Side:       entity.Side(req.Side),
		LotSize:    req.LotSize,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		Profit:     req.Profit,
		Notes:      req.Notes,
		OccurredAt: req.OccurredAt,
	}
}

// toResponse はドメインエンティティをレスポンスDTOに変換します。
func toResponse(t *entity.Trade) *dto.TradeRes {
	return &dto.TradeRes{
		ID:            t.ID,
		Symbol:        t.Symbol,
		Side:          string(t.Side),
		LotSize:       t.LotSize,
		EntryPrice:    t.EntryPrice,
		ExitPrice:     t.DisplayExitPrice(),
		Profit:        t.Profit,
		Open:          t.Profit == nil,
		Notes:         t.Notes,
		AIAnalysis:    t.AIAnalysis,
		ScreenshotURL: t.ScreenshotURL,
		OccurredAt:    t.OccurredAt.Format(time.RFC3339),
		TradingDay:    tradingday.Of(t.OccurredAt).Format("2006-01-02"),
	}
}
