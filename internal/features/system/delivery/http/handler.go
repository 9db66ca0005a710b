package http

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const appName = "Ashen API"

// StoreProbe is the slice of the store client the diagnostics endpoint
// needs.
type StoreProbe interface {
	Name() string
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context, limit int) ([]string, error)
}

type SystemHandler struct {
	store StoreProbe
}

func NewSystemHandler(store StoreProbe) *SystemHandler {
	return &SystemHandler{store: store}
}

func (h *SystemHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/test", h.TestDatabase)
}

// @Summary Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"app": appName, "status": "ok"})
}

// @Summary Store connectivity check
// @Description Best-effort store diagnostics; never fails the request.
// @Description Exposes the database name and up to 10 collection names,
// @Description which may not be appropriate for production exposure.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	ctx := c.Request.Context()

	response["database"] = "✅ Available"
	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	response["database_name"] = h.store.Name()

	if err := h.store.Ping(ctx); err != nil {
		response["database"] = "❌ Error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, response)
		return
	}
	response["connection_status"] = "Connected"

	names, err := h.store.CollectionNames(ctx, 10)
	if err != nil {
		response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, response)
		return
	}

	response["collections"] = names
	response["database"] = "✅ Connected & Working"
	c.JSON(http.StatusOK, response)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
