package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/phukrit7171/appointment-booking-api/internal/config"
	dbpkg "github.com/phukrit7171/appointment-booking-api/internal/db"
	"github.com/phukrit7171/appointment-booking-api/internal/logging"
	"github.com/phukrit7171/appointment-booking-api/internal/middleware"
	"github.com/phukrit7171/appointment-booking-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logging.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := dbpkg.New(cfg)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal("failed to migrate schema", zap.Error(err))
	}

	rdb := connectRedis(cfg, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Appointment Booking System API")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// connectRedis returns nil when redis is unreachable; the API serves
// reads from the database in that case.
func connectRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, service cache disabled", zap.Error(err))
		return nil
	}

	return rdb
}
