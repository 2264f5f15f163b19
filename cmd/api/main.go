package main

import (
	"log"
	"net/http"

	"github.com/HebertyRichards/API-web-barber/internal/config"
	dbpkg "github.com/HebertyRichards/API-web-barber/internal/db"
	"github.com/HebertyRichards/API-web-barber/internal/logger"
	"github.com/HebertyRichards/API-web-barber/internal/middleware"
	"github.com/HebertyRichards/API-web-barber/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {

	_ = godotenv.Load()

	// Valores monetários saem como número JSON, não como string.
	decimal.MarshalJSONWithoutQuotes = true

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	defer dbpkg.Close(db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bem-vindo à API da Barbearia"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, zlog)

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
