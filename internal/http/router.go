// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nevaplan/internal/http/handlers"
	"nevaplan/internal/http/middleware"
	"nevaplan/internal/modules/catalog"
	"nevaplan/internal/modules/trip"
)

func NewRouter(tripService *trip.Service, catalogService *catalog.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.TraceID())
	r.Use(middleware.CORS())

	tripHandler := handlers.NewTripHandler(tripService)
	r.POST("/api/itinerary", tripHandler.Plan)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	r.GET("/api/pois", catalogHandler.ListPois)
	r.GET("/api/tags", catalogHandler.ListTags)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
