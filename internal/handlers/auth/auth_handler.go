// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"fleetrent-service/internal/domain/account"
	xerrors "fleetrent-service/internal/pkg/errors"
	"fleetrent-service/internal/pkg/response"
	authUsecase "fleetrent-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates an account and hands back a token (public endpoint)
func (h *AuthHandler) Login(c *gin.Context) {
	var req account.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	loginResp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("login failed",
			zap.String("username", req.Username),
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		response.Error(c, http.StatusUnauthorized, "login failed", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", loginResp)
}

// Register creates a customer account (public endpoint)
func (h *AuthHandler) Register(c *gin.Context) {
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.authService.Register(c.Request.Context(), &req); err != nil {
		h.logger.Warn("registration failed",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		status := http.StatusBadRequest
		if xerrors.Is(err, xerrors.ErrUsernameTaken) {
			status = http.StatusConflict
		}
		response.Error(c, status, "registration failed", err)
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", gin.H{
		"username": req.Username,
		"role":     account.RoleCustomer,
	})
}
