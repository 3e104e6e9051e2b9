package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/api"
	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/v1/user")
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.Created(c, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Login successful", resp)
}
