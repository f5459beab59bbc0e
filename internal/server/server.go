package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/logger"
	"max.ks1230/finances-tracker/internal/model/records"
)

const readHeaderTimeout = 5 * time.Second

type recordsService interface {
	AddTransaction(ctx context.Context, in records.TransactionInput) (finance.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, in records.TransactionInput) (finance.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetTransaction(ctx context.Context, id string) (finance.Transaction, error)
	ListTransactions(ctx context.Context, filter records.Filter) ([]finance.Transaction, error)

	AddBudget(ctx context.Context, in records.BudgetInput) (finance.Budget, error)
	UpdateBudget(ctx context.Context, id string, in records.BudgetInput) (finance.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
	ListBudgets(ctx context.Context) ([]finance.Budget, error)

	Snapshot(ctx context.Context) ([]finance.Transaction, []finance.Budget, error)
	Now() time.Time
}

type HTTPServer struct {
	engine  *gin.Engine
	records recordsService
	server  *http.Server
}

func NewHTTPServer(records recordsService) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	s := &HTTPServer{
		engine:  gin.New(),
		records: records,
	}
	s.registerMiddlewares()
	s.registerRoutes()
	return s
}

func (s *HTTPServer) registerMiddlewares() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestLogger())
	s.engine.Use(requestMetrics())
	s.engine.Use(corsMiddleware())
	s.engine.Use(errorHandler())
}

func (s *HTTPServer) registerRoutes() {
	api := s.engine.Group("/api")

	transactions := api.Group("/transactions")
	{
		transactions.GET("", s.listTransactions)
		transactions.POST("", s.createTransaction)
		transactions.GET("/:id", s.getTransaction)
		transactions.PUT("/:id", s.updateTransaction)
		transactions.DELETE("/:id", s.deleteTransaction)
	}

	budgets := api.Group("/budgets")
	{
		budgets.GET("", s.listBudgets)
		budgets.POST("", s.createBudget)
		budgets.PUT("/:id", s.updateBudget)
		budgets.DELETE("/:id", s.deleteBudget)
		budgets.GET("/comparison", s.getBudgetComparison)
	}

	api.GET("/categories", s.getCategories)
	api.GET("/categories/breakdown", s.getCategoryBreakdown)
	api.GET("/summary", s.getSummary)
	api.GET("/insights", s.getInsights)
	api.GET("/trend", s.getTrend)

	s.engine.GET("/health", s.healthCheck)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves until Shutdown is called.
func (s *HTTPServer) Run(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	logger.Info("HTTP server listening", zap.String("addr", addr))
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrap(err, "serve http")
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	defer logger.Info("HTTP server stopped")
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
