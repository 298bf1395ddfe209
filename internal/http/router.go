package api

import (
	stdhttp "net/http"

	intconfig "ticketbooking/internal/config"
	h "ticketbooking/internal/http/handlers"
	"ticketbooking/internal/http/middleware"
	"ticketbooking/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(env intconfig.Env, bookingSvc services.BookingService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		bookingHandler := h.BookingHandler{Service: bookingSvc}
		bookings := api.Group("/bookings", middleware.AuthOptional(env.JWTSecret))
		bookings.GET("/options", bookingHandler.Options)
		bookings.POST("/validate", bookingHandler.Validate)
		bookings.POST("/summary", bookingHandler.Summary)
		bookings.POST("", bookingHandler.Create)
	}

	h.SetRouter(r)
	return r
}
