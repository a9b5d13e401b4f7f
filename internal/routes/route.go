package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/apnigaddi/server/internal/container"
	"github.com/apnigaddi/server/internal/handlers"
	"github.com/apnigaddi/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		// Keep-warm liveness probe
		api.GET("/ping", func(ctx *gin.Context) {
			ctx.String(http.StatusOK, "pong")
		})

		bookingRoutes := api.Group("/bookings")
		{
			bookingRoutes.GET("", handlers.ListBookings(c.BookingService))
			bookingRoutes.POST("", handlers.CreateBooking(c.BookingService))
			bookingRoutes.GET("/:id", handlers.GetBooking(c.BookingService))
			bookingRoutes.PATCH("/:id/status", handlers.UpdateBookingStatus(c.BookingService))
			bookingRoutes.DELETE("/:id", handlers.DeleteBooking(c.BookingService))
		}
	}

	// Serve the built frontend in production; any non-API path falls back
	// to the SPA entry document, unmatched API paths stay JSON 404s.
	if c.Config.IsProduction() {
		r.Static("/static", filepath.Join(c.Config.StaticDir, "static"))
		r.StaticFile("/favicon.ico", filepath.Join(c.Config.StaticDir, "favicon.ico"))
	}
	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api") {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		if c.Config.IsProduction() {
			ctx.File(filepath.Join(c.Config.StaticDir, "index.html"))
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	return r
}
