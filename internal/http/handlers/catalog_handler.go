// README: Catalog handlers: POI list and tag vocabulary for the UI.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nevaplan/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// ListPois handles GET /api/pois. An optional ?region= query filters the
// list the same way the prompt builder does.
func (h *CatalogHandler) ListPois(c *gin.Context) {
	region := c.Query("region")
	if region == "" || region == "both" {
		writeJSON(c, http.StatusOK, gin.H{"pois": h.catalog.All()})
		return
	}
	if !catalog.ValidRegion(catalog.Region(region)) {
		writeError(c, http.StatusBadRequest, "unknown region")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"pois": h.catalog.FilterByRegion(region)})
}

// ListTags handles GET /api/tags.
func (h *CatalogHandler) ListTags(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"tags": catalog.AllTags})
}
