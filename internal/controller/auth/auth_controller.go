package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/middleware"
	"github.com/studenthub/examgate/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Log in against the remote exam API
// @Description Exchanges username/password for a gateway session token. The remote bearer token never leaves the gateway.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Rejected credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, examapi.ErrUnauthorized) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid username or password"})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Login is unavailable right now", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Clears the stored identity; the gateway token stops working immediately.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204 "Logged out"
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ac := middleware.AuthContext(ctx)
	if err := c.authService.Logout(ac.Key); err != nil {
		log.Error().Err(err).Msg("Logout: failed to clear identity")
	}
	ctx.Status(http.StatusNoContent)
}
