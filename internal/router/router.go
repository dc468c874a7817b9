package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/omgcarlo/RetailSavvy/internal/config"
	"github.com/omgcarlo/RetailSavvy/internal/handler"
	"github.com/omgcarlo/RetailSavvy/internal/middleware"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
	"github.com/omgcarlo/RetailSavvy/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// db and rdb may be nil (memory backend / cache disabled); they are only
// used for the health check and the product list cache.
func New(cfg *config.Config, repos repository.Registry, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	cacheTTL := time.Duration(cfg.ProductCacheTTL) * time.Second
	authSvc := service.NewAuthService(repos.Users, cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	productSvc := service.NewProductService(repos.Products, rdb, cacheTTL)
	transactionSvc := service.NewTransactionService(repos.Transactions, cfg.AllowUnpaidSales)
	customerSvc := service.NewCustomerService(repos.Customers)
	debtSvc := service.NewDebtService(repos.Debts, repos.Customers)
	expenseSvc := service.NewExpenseService(repos.Expenses)
	statsSvc := service.NewStatsService(repos.Transactions, repos.Expenses, repos.Debts, cfg.Currency)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	debtsH := handler.NewDebtsHandler(debtSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/register", authH.Register)
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		api.GET("/user", authH.CurrentUser)

		api.GET("/products", productsH.List)
		api.POST("/products", productsH.Create)
		api.PATCH("/products/:id", productsH.Update)
		api.DELETE("/products/:id", productsH.Delete)

		api.GET("/transactions", transactionsH.List)
		api.GET("/transactions/:id", transactionsH.Get)
		api.POST("/transactions", transactionsH.Create)

		api.GET("/debts", debtsH.List)
		api.POST("/debts", debtsH.Create)
		api.PATCH("/debts/:id", debtsH.Update)

		api.GET("/customers", customersH.List)
		api.POST("/customers", customersH.Create)

		api.GET("/expenses", expensesH.List)
		api.POST("/expenses", expensesH.Create)

		api.GET("/stats", statsH.Summary)
	}

	return r
}
