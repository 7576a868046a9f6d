package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthText is the fixed body of the health probe
const HealthText = "✅ Backend is running!"

// Health godoc
// @Summary      Health probe
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func Health(c *gin.Context) {
	c.String(http.StatusOK, HealthText)
}
