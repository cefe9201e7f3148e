package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	response "payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// ConfigHandler exposes client-side configuration and the checkout page.
type ConfigHandler struct {
	publishableKey string
	staticDir      string
}

func NewConfigHandler(publishableKey, staticDir string) *ConfigHandler {
	return &ConfigHandler{publishableKey: publishableKey, staticDir: staticDir}
}

// GetConfig godoc
// @Summary      Publishable key for the browser client
// @Tags         config
// @Produce      json
// @Success      200  {object}  response.ConfigResponse
// @Router       /config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, response.ConfigResponse{PublishableKey: h.publishableKey})
}

// Index serves index.html from the static directory. Nothing else under it is exposed.
func (h *ConfigHandler) Index(c *gin.Context) {
	path := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(path); err != nil {
		writeError(c, pkg.NewDomainError(CodeNotFound, "index.html not found", err, http.StatusNotFound))
		return
	}
	c.File(path)
}
