package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/analytics"
)

// periodOf reads the year and month query params, each defaulting to the current period.
func (s *HTTPServer) periodOf(c *gin.Context) (finance.Period, bool) {
	p := finance.PeriodOf(s.records.Now())
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year <= 0 {
			respondError(c, http.StatusBadRequest, "year must be a positive number")
			return p, false
		}
		p.Year = year
	}
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			respondError(c, http.StatusBadRequest, "month must be from 1 to 12")
			return p, false
		}
		p.Month = time.Month(month)
	}
	return p, true
}

type insightsResponse struct {
	Period          string                     `json:"period"`
	Insights        analytics.Insights         `json:"insights"`
	Recommendations []analytics.Recommendation `json:"recommendations"`
}

func (s *HTTPServer) snapshot(c *gin.Context) ([]finance.Transaction, []finance.Budget, bool) {
	txs, budgets, err := s.records.Snapshot(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "load records")
		return nil, nil, false
	}
	return txs, budgets, true
}

func (s *HTTPServer) getSummary(c *gin.Context) {
	p, ok := s.periodOf(c)
	if !ok {
		return
	}
	txs, budgets, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.Summarize(txs, budgets, p))
}

func (s *HTTPServer) getInsights(c *gin.Context) {
	p, ok := s.periodOf(c)
	if !ok {
		return
	}
	txs, budgets, ok := s.snapshot(c)
	if !ok {
		return
	}
	ins := analytics.Analyze(txs, budgets, p, s.records.Now())
	c.JSON(http.StatusOK, insightsResponse{
		Period:          p.Key(),
		Insights:        ins,
		Recommendations: analytics.Recommendations(ins),
	})
}

func (s *HTTPServer) getBudgetComparison(c *gin.Context) {
	p, ok := s.periodOf(c)
	if !ok {
		return
	}
	txs, budgets, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.BudgetComparison(txs, budgets, p))
}

func (s *HTTPServer) getTrend(c *gin.Context) {
	txs, _, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.MonthlyTrend(txs))
}

func (s *HTTPServer) getCategoryBreakdown(c *gin.Context) {
	p, ok := s.periodOf(c)
	if !ok {
		return
	}
	txs, _, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.CategoryBreakdown(analytics.FilterTransactions(txs, p), analytics.ChartCategoriesLimit))
}
