// Package router wires HTTP routes to handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/PouyaBirvand/blito/internal/config"
	"github.com/PouyaBirvand/blito/internal/handler"
	"github.com/PouyaBirvand/blito/internal/middleware"
)

// Deps carries everything the router needs to register routes.
type Deps struct {
	Cfg     config.Config
	Redis   *redis.Client
	Auth    *handler.AuthHandler
	Venue   *handler.VenueHandler
	SeatMap *handler.SeatMapHandler
	Editor  *handler.EditorHandler
}

// New builds the Echo engine with all routes registered.  Everything under
// /api except the auth endpoints requires a valid access token; read-heavy
// persistence endpoints additionally sit behind the Redis response cache,
// and the whole protected surface shares the token-bucket rate limiter.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.POST("/auth", d.Auth.Verify)
	api.POST("/auth/login", d.Auth.Login)

	protected := api.Group("",
		middleware.JWTAuth(d.Cfg.JWTSecret),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), d.Redis),
	)

	cached := middleware.NewRedisCache(config.LoadCacheConfig(), d.Redis)

	// venue persistence
	protected.GET("/venue", d.Venue.Get, cached)
	protected.POST("/venue", d.Venue.Save)
	protected.POST("/venue/sync", d.Venue.Sync)
	protected.POST("/venue/load", d.Venue.Load)

	// saved seat map collection
	protected.GET("/seatmaps", d.SeatMap.List, cached)
	protected.POST("/seatmaps", d.SeatMap.Create)
	protected.GET("/seatmaps/:id", d.SeatMap.Get, cached)
	protected.PUT("/seatmaps/:id", d.SeatMap.Update)
	protected.DELETE("/seatmaps/:id", d.SeatMap.Delete)

	// file export/import of the working map
	protected.GET("/seatmap/export", d.SeatMap.Export)
	protected.POST("/seatmap/import", d.SeatMap.Import)

	// live editor state
	protected.GET("/editor/seatmap", d.Editor.GetSeatMap)
	protected.PUT("/editor/seatmap", d.Editor.ReplaceSeatMap)
	protected.PATCH("/editor/map", d.Editor.UpdateMeta)
	protected.POST("/editor/seats", d.Editor.AddSeat)
	protected.DELETE("/editor/seats", d.Editor.RemoveAllSeats)
	protected.POST("/editor/sections", d.Editor.AddSection)
	protected.PATCH("/editor/sections/:id", d.Editor.UpdateSection)
	protected.POST("/editor/sections/:id/seats", d.Editor.AddSeatToSection)
	protected.PATCH("/editor/elements/:id", d.Editor.UpdateElement)
	protected.DELETE("/editor/elements/:id", d.Editor.RemoveElement)
	protected.PATCH("/editor/stage", d.Editor.UpdateStage)
	protected.POST("/editor/floors", d.Editor.AddFloor)
	protected.PATCH("/editor/floors/:id", d.Editor.UpdateFloor)
	protected.DELETE("/editor/floors/:id", d.Editor.RemoveFloor)
	protected.POST("/editor/floors/:id/activate", d.Editor.ActivateFloor)
	protected.POST("/editor/generate/seats", d.Editor.GenerateSeats)
	protected.POST("/editor/generate/section", d.Editor.GenerateSection)
	protected.POST("/editor/templates/:name", d.Editor.ApplyTemplate)

	return e
}
