package main

import (
	"context"
	"time"

	"github.com/winget-powershelll/fourchef/internal/config"
	"github.com/winget-powershelll/fourchef/internal/costing"
	"github.com/winget-powershelll/fourchef/internal/db"
	"github.com/winget-powershelll/fourchef/internal/item"
	"github.com/winget-powershelll/fourchef/internal/middleware"
	"github.com/winget-powershelll/fourchef/internal/recipe"
	"github.com/winget-powershelll/fourchef/internal/report"
	"github.com/winget-powershelll/fourchef/internal/unit"
	"github.com/winget-powershelll/fourchef/internal/vendor"
	"github.com/winget-powershelll/fourchef/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── LOGGING ─────────────────────────
	log := logger.Must(logger.New())
	defer log.Sync()

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.ConnectPostgres(context.Background(), cfg.Database.URL)
	if err != nil {
		log.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pgDB.Close()
	log.Info("connected to postgres")

	// ───────────────────────── GIN ─────────────────────────
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger.Named(log, "http")))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CORE ─────────────────────────
	engine := costing.NewEngine(costing.NewPostgresStore(pgDB), logger.Named(log, "costing"))

	// ───────────────────────── REPOS ─────────────────────────
	itemRepo := item.NewPostgresRepository(pgDB)
	vendorRepo := vendor.NewPostgresRepository(pgDB)
	unitRepo := unit.NewPostgresRepository(pgDB)
	recipeRepo := recipe.NewPostgresRepository(pgDB)
	reportRepo := report.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	itemService := item.NewService(itemRepo)
	vendorService := vendor.NewService(vendorRepo)
	recipeService := recipe.NewService(recipeRepo, engine)
	reportService := report.NewService(reportRepo, recipeRepo, engine, logger.Named(log, "report"))

	// ───────────────────────── HANDLERS ─────────────────────────
	itemHandler := item.NewHandler(itemService)
	vendorHandler := vendor.NewHandler(vendorService)
	unitHandler := unit.NewHandler(unitRepo)
	recipeHandler := recipe.NewHandler(recipeService)
	reportHandler := report.NewHandler(reportService)
	costHandler := costing.NewHandler(engine)

	// ───────────────────────── ITEM ROUTES ─────────────────────────
	items := r.Group("/items")
	{
		items.GET("", itemHandler.Search)
		items.GET("/:id", itemHandler.Detail)
	}

	// ───────────────────────── VENDOR ROUTES ─────────────────────────
	vendors := r.Group("/vendors")
	{
		vendors.GET("", vendorHandler.Search)
		vendors.GET("/simple", vendorHandler.ListSimple)
		vendors.GET("/:id", vendorHandler.Detail)
	}

	// ───────────────────────── UNIT ROUTES ─────────────────────────
	r.GET("/units", unitHandler.List)

	// ───────────────────────── RECIPE ROUTES ─────────────────────────
	recipes := r.Group("/recipes")
	{
		recipes.GET("", recipeHandler.Search)
		recipes.GET("/:id", recipeHandler.Detail)
	}

	// ───────────────────────── COSTING ROUTES ─────────────────────────
	r.POST("/cost/calculate", costHandler.Calculate)

	// ───────────────────────── REPORT ROUTES ─────────────────────────
	reports := r.Group("/reports")
	{
		reports.GET("/overview", reportHandler.Overview)
		reports.GET("/missing-data", reportHandler.MissingData)
		reports.POST("/recalculate", reportHandler.Recalculate)
	}

	// ───────────────────────── SCHEDULER ─────────────────────────
	scheduler := report.NewScheduler(reportService, logger.Named(log, "scheduler"))
	if err := scheduler.Start(cfg.Reporting.CronSchedule); err != nil {
		log.Fatal("scheduler start failed", zap.Error(err))
	}
	defer scheduler.Stop()

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
