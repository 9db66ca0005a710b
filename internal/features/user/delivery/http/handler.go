package http

import (
	"net/http"

	"ashen-backend/internal/common/middleware"
	"ashen-backend/internal/features/user/models"
	"ashen-backend/internal/features/user/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine, gate *middleware.AccessGate) {
	users := router.Group("/api/users")
	{
		users.GET("", h.ListPublic)
		users.POST("", h.Create)
	}

	admin := router.Group("/api/admin")
	admin.Use(gate.RequireAdmin())
	{
		admin.GET("/users", h.ListAdmin)
		admin.DELETE("/users/:username", h.Delete)
		admin.POST("/login", h.Login)
	}
}

// @Summary List public profiles
// @Description List up to 100 profiles in their public projection
// @Tags users
// @Produce json
// @Success 200 {array} models.PublicUser
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/users [get]
func (h *UserHandler) ListPublic(c *gin.Context) {
	users, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Create a profile
// @Description Validate and store a new user profile. Username and email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserInput true "Profile to create"
// @Success 200 {object} models.CreatedResponse
// @Failure 409 {object} map[string]string "Duplicate username or email"
// @Failure 422 {object} map[string]string "Validation failure"
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input models.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// @Summary List all profiles
// @Description List up to 100 full records with stringified identifiers (admin only)
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Success 200 {array} models.AdminUser
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/admin/users [get]
func (h *UserHandler) ListAdmin(c *gin.Context) {
	users, err := h.service.ListAdmin(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Delete a profile
// @Description Delete a profile by username (admin only)
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Param username path string true "Username"
// @Success 200 {object} models.DeletedResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/admin/users/{username} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("username")

	if err := h.service.Delete(c.Request.Context(), username); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DeletedResponse{Status: "deleted", Username: username})
}

// @Summary Check admin credentials
// @Description Returns ok when the presented Basic credentials are valid
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/admin/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
