package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/cookie"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands     commands.AuthCommands
	organizerQueries queries.OrganizerQueries
	jwtService       *jwt.Service
	cookieCfg        config.CookieConfig
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	organizerQueries queries.OrganizerQueries,
	jwtService *jwt.Service,
	cookieCfg config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		authCommands:     authCommands,
		organizerQueries: organizerQueries,
		jwtService:       jwtService,
		cookieCfg:        cookieCfg,
	}
}

// @Summary Organizer login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	organizer, err := h.organizerQueries.GetByID(c.Request.Context(), result.OrganizerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.AccessToken, h.jwtService.TokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Organizer: resdto.OrganizerResponse{
			ID:    organizer.ID,
			Name:  organizer.Name,
			Email: organizer.Email,
		},
	})
}

// @Summary Organizer logout
// @Description Clear the auth cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current organizer
// @Description Get the authenticated organizer's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OrganizerResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	organizerID, ok := middleware.GetOrganizerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	organizer, err := h.organizerQueries.GetByID(c.Request.Context(), organizerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrganizerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Organizer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OrganizerResponse{
		ID:    organizer.ID,
		Name:  organizer.Name,
		Email: organizer.Email,
	})
}
