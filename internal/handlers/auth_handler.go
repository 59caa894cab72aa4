package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alinamiashalkina/event-creator/internal/middleware"
	"github.com/alinamiashalkina/event-creator/internal/services"
	"github.com/alinamiashalkina/event-creator/internal/services/dto"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации. Регистрация,
// вход и обновление токена публичные; выход и создание админа
// требуют аутентификации.
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	auth := public.Group("/auth")
	{
		auth.POST("/register", loginLimiter, h.RegisterUser)
		auth.POST("/register/contractor", loginLimiter, h.RegisterContractor)
		auth.POST("/login", loginLimiter, h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	authProtected := protected.Group("/auth")
	{
		authProtected.POST("/logout", h.Logout)
		authProtected.POST("/register/admin", h.RegisterAdmin)
	}
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) RegisterContractor(c *gin.Context) {
	var req dto.RegisterContractorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contractor, err := h.authService.RegisterContractor(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Application submitted. Your account will be activated after admin approval.",
		"contractor": contractor,
	})
}

// RegisterAdmin доступен только действующему админу
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	caller, ok := h.RequireUser(c)
	if !ok {
		return
	}
	if err := requireAdmin(caller); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RegisterUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.RegisterAdmin(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.CurrentToken(c)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
