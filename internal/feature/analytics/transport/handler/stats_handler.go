// Package handler はanalyticsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"journal_backend/internal/api"
	"journal_backend/internal/feature/analytics/domain/equity"
	"journal_backend/internal/feature/analytics/domain/stats"
	"journal_backend/internal/feature/analytics/transport/http/dto"
	"journal_backend/internal/feature/analytics/usecase"
	jwtmw "journal_backend/internal/platform/jwt"
)

// dateLayout はチャート表示用の日付フォーマットです。
const dateLayout = "2006-01-02"

// AnalyticsUsecase は取引統計のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalyticsUsecase interface {
	GetStats(ctx context.Context, userID uint) (stats.Summary, error)
	GetEquityCurve(ctx context.Context, userID uint) ([]equity.Point, error)
	GetAssetPerformance(ctx context.Context, userID uint) ([]equity.AssetPerformance, error)
	GetDistribution(ctx context.Context, userID uint) ([]equity.DistributionBucket, error)
	GetCalendar(ctx context.Context, userID uint, year int, month time.Month) ([]usecase.CalendarDay, error)
}

// StatsHandler は取引統計のHTTPリクエストを処理します。
type StatsHandler struct {
	uc AnalyticsUsecase
}

// NewStatsHandler は指定されたusecaseでStatsHandlerの新しいインスタンスを生成します。
func NewStatsHandler(uc AnalyticsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStats はサマリー統計を返します。
//
// エンドポイント: GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	s, err := h.uc.GetStats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StatsRes{
		TotalTrades:  s.TotalTrades,
		Wins:         s.Wins,
		Losses:       s.Losses,
		Breakevens:   s.Breakevens,
		WinRate:      s.WinRate,
		ProfitFactor: s.ProfitFactor,
		GrossWin:     s.GrossWin,
		GrossLoss:    s.GrossLoss,
		AverageWin:   s.AverageWin,
		AverageLoss:  s.AverageLoss,
		Expectancy:   s.Expectancy,
		NetProfit:    s.NetProfit,
		TotalLots:    s.TotalLots,
		MaxDrawdown:  s.MaxDrawdown,
		Long:         toSideRes(s.Long),
		Short:        toSideRes(s.Short),
	})
}

// GetEquityCurve はエクイティカーブを返します。チャートが常に描画できるよう
// 結果には最低1点が含まれます。
//
// エンドポイント: GET /stats/equity
func (h *StatsHandler) GetEquityCurve(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	points, err := h.uc.GetEquityCurve(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.EquityPointRes, 0, len(points))
	for _, p := range points {
		day := p.Day
		if day.IsZero() {
			// 取引が1件もない場合の合成ゼロ点は当日の日付で表示する
			day = time.Now()
		}
		out = append(out, dto.EquityPointRes{
			Date:     day.Format(dateLayout),
			Equity:   p.Equity,
			Drawdown: p.Drawdown,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetAssetPerformance は銘柄別成績を成績の良い順で返します。
//
// エンドポイント: GET /stats/assets
func (h *StatsHandler) GetAssetPerformance(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	perf, err := h.uc.GetAssetPerformance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.AssetPerformanceRes, 0, len(perf))
	for _, p := range perf {
		out = append(out, dto.AssetPerformanceRes{
			Symbol:    p.Symbol,
			Trades:    p.Trades,
			WinRate:   p.WinRate,
			NetProfit: p.NetProfit,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetDistribution は勝敗分布を返します。件数0の区分は含まれません。
//
// エンドポイント: GET /stats/distribution
func (h *StatsHandler) GetDistribution(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	buckets, err := h.uc.GetDistribution(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.DistributionBucketRes, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.DistributionBucketRes{Label: b.Label, Color: b.Color, Count: b.Count})
	}
	c.JSON(http.StatusOK, out)
}

// GetCalendar は指定月の各トレーディングデーの損益と件数を返します。
// 年月未指定の場合は現在の月を使用します。
//
// エンドポイント: GET /stats/calendar?year=2024&month=5
func (h *StatsHandler) GetCalendar(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		year = now.Year()
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		monthNum = int(now.Month())
	}

	days, err := h.uc.GetCalendar(c.Request.Context(), userID, year, time.Month(monthNum))
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.CalendarDayRes, 0, len(days))
	for _, d := range days {
		out = append(out, dto.CalendarDayRes{
			Date:      d.Day.Format(dateLayout),
			NetProfit: d.NetProfit,
			Trades:    d.Trades,
		})
	}
	c.JSON(http.StatusOK, out)
}

func toSideRes(s stats.SideSummary) dto.SideStatsRes {
	return dto.SideStatsRes{
		Trades:    s.Trades,
		Wins:      s.Wins,
		WinRate:   s.WinRate,
		NetProfit: s.NetProfit,
	}
}
