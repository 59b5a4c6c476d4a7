package server

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dalmoeng/custos-go/cmd/internal/config"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/services/apierrors"
	"github.com/dalmoeng/custos-go/cmd/internal/services/auth"
	"github.com/dalmoeng/custos-go/cmd/internal/services/classify"
	"github.com/dalmoeng/custos-go/cmd/internal/services/contracts"
	"github.com/dalmoeng/custos-go/cmd/internal/services/dashboard"
	"github.com/dalmoeng/custos-go/cmd/internal/services/execucao"
	"github.com/dalmoeng/custos-go/cmd/internal/services/nf"
	"github.com/dalmoeng/custos-go/cmd/internal/services/orcamento"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

type Server struct {
	store            db.Store
	router           *gin.Engine
	logger           *logging.Logger
	authService      *auth.Service
	contractService  *contracts.Service
	budgetService    *orcamento.Service
	nfService        *nf.Service
	classifyService  *classify.Service
	executionService *execucao.Service
	dashboardService *dashboard.Service
	httpClient       *http.Client
	config           *config.Config
}

func NewServer(store db.Store, logger *logging.Logger, cfg *config.Config) *Server {
	httpClient := &http.Client{
		Timeout: time.Minute * 5,
	}

	server := &Server{
		store:            store,
		logger:           logger,
		authService:      auth.NewService(store, cfg),
		contractService:  contracts.NewService(store, logger),
		budgetService:    orcamento.NewService(logger),
		nfService:        nf.NewService(store, logger),
		classifyService:  classify.NewService(store, logger),
		executionService: execucao.NewService(store, logger, thresholdsFromConfig(cfg)),
		dashboardService: dashboard.NewService(store, logger, cfg.Execution.AttentionRatio),
		httpClient:       httpClient,
		config:           cfg,
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.IsDebug != nil && *cfg.IsDebug {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	} else {
		if len(cfg.CORS.AllowedOrigins) > 0 {
			corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
		} else {
			logger.Warn("CORS allowed_origins not configured in production - using restrictive default")
			corsConfig.AllowOrigins = []string{}
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS", "PUT", "PATCH", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", server.healthHandler)
	router.GET("/api/stats", server.getStatsHandler)

	// --- INTERNAL (OCR worker) ---
	// Server-to-server only. No JWT here, just service-auth plus rate
	// limiting in case the API key leaks.
	internal := router.Group("/internal/worker")
	internal.Use(ServiceBearerAuthMiddleware("ocr-worker"))
	internal.Use(ServiceRateLimitMiddleware(100, 200)) // 100 req/s, burst 200
	{
		// The OCR worker posts invoices it extracted from uploaded PDFs.
		internal.POST("/notas-fiscais", server.ingestNotaFiscalHandler)
	}

	// --- API V1 ---
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", server.loginHandler)
		v1.POST("/auth/refresh", server.refreshHandler)
		v1.POST("/auth/logout", server.logoutHandler)

		protected := v1.Group("/")
		protected.Use(AuthMiddleware(server.config, server.store))
		{
			protected.GET("/auth/me", server.meHandler)

			// Stateless spreadsheet parsing, used by the contract wizard
			// before anything is persisted.
			protected.POST("/budget/parse", server.parseBudgetHandler)

			protected.GET("/contracts", server.listContractsHandler)
			protected.POST("/contracts", server.createContractHandler)
			protected.GET("/contracts/kpis", server.contractKPIsHandler)
			protected.GET("/contracts/:id", server.getContractHandler)
			protected.PUT("/contracts/:id", server.updateContractHandler)
			protected.DELETE("/contracts/:id", server.deleteContractHandler)
			protected.PATCH("/contracts/:id/progress", server.updateContractProgressHandler)

			protected.GET("/contracts/:id/budget", server.getContractBudgetHandler)
			protected.POST("/contracts/:id/budget/import", server.importContractBudgetHandler)

			protected.GET("/contracts/:id/nf", server.listContractNotasFiscaisHandler)
			protected.GET("/contracts/:id/execution", server.getExecutionHandler)
			protected.POST("/contracts/:id/execution/recalculate", server.recalculateExecutionHandler)

			protected.GET("/nf", server.listNotasFiscaisHandler)
			protected.POST("/nf", server.createNotaFiscalHandler)
			protected.GET("/nf/stats", server.nfStatsHandler)
			protected.POST("/nf/import", server.importNfXMLHandler)
			protected.POST("/nf/import/batch", server.importNfBatchHandler)
			protected.POST("/nf/upload-pdf", server.proxyNfUploadHandler)
			protected.GET("/nf/tasks/:task_id/status", server.getOcrTaskStatusHandler)
			protected.GET("/nf/:id", server.getNotaFiscalHandler)
			protected.PUT("/nf/:id", server.updateNotaFiscalHandler)
			protected.DELETE("/nf/:id", server.deleteNotaFiscalHandler)
			protected.POST("/nf/:id/validate", server.validateNotaFiscalHandler)
			protected.POST("/nf/:id/reject", server.rejectNotaFiscalHandler)
			protected.POST("/nf/:id/process", server.processNotaFiscalHandler)

			protected.GET("/nf/:id/suggestions", server.nfSuggestionsHandler)
			protected.PUT("/nf/:id/items/:item_id/link", server.linkNfItemHandler)
			protected.DELETE("/nf/:id/items/:item_id/link", server.unlinkNfItemHandler)

			protected.GET("/dashboard", server.dashboardSummaryHandler)
			protected.GET("/dashboard/kpis", server.dashboardKPIsHandler)
		}

		admin := protected.Group("/admin")
		admin.Use(RequireRole("admin"))
		{
			admin.GET("/users", server.listUsersHandler)
			admin.PATCH("/users/:id/role", server.updateUserRoleHandler)
		}
	}

	server.router = router
	return server
}

func thresholdsFromConfig(cfg *config.Config) execucao.Thresholds {
	t := execucao.DefaultThresholds()
	if cfg.Execution.VarianceMediumPercent > 0 {
		t.VarianceMediumPercent = cfg.Execution.VarianceMediumPercent
	}
	if cfg.Execution.VarianceHighPercent > 0 {
		t.VarianceHighPercent = cfg.Execution.VarianceHighPercent
	}
	if cfg.Execution.CompletionRatio > 0 {
		t.CompletionRatio = cfg.Execution.CompletionRatio
	}
	if cfg.Execution.ProgressDelayPoints > 0 {
		t.ProgressDelayPoints = cfg.Execution.ProgressDelayPoints
	}
	return t
}

func (s *Server) Start(address string) error {
	return s.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// respondServiceError maps service-layer errors onto HTTP statuses.
// Validation problems become 400, missing resources 404, the rest 500.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	var validationErr *apierrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var notFoundErr *apierrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, errorResponse(err))
		return
	}
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, errorResponse(err))
		return
	}
	s.logger.WithError(err).Error("internal error")
	c.JSON(http.StatusInternalServerError, errorResponse(errors.New("erro interno do servidor")))
}
