package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"ski-rental-backend/config"
	"ski-rental-backend/internal/availability"
	"ski-rental-backend/internal/match"
	"ski-rental-backend/internal/mw"
	"ski-rental-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, s store.Store, engine *match.Engine, avail *availability.Service) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, engine, avail)

	// Initialize middleware
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), 5, cfg.Server.RequestIPHeader)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	api.Use(mw.PurgeOnWrite(cacheStore))
	{
		api.POST("/search", handler.PostSearch)

		api.GET("/skis", caching, handler.GetSkis)
		api.POST("/skis", handler.PostSki)
		api.PUT("/skis/:id", handler.PutSki)
		api.DELETE("/skis/:id", handler.DeleteSki)

		api.GET("/reservations", caching, handler.GetReservations)
		api.POST("/reservations", handler.PostReservation)
		api.PUT("/reservations/:id", handler.PutReservation)
		api.DELETE("/reservations/:id", handler.DeleteReservation)

		api.GET("/availability", handler.GetAvailability)
	}

	return r
}
