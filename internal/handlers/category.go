package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/api"
	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/service"
)

type CategoryHandler struct {
	categories service.CategoryService
}

func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/v1/categories")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.GetByID)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.Created(c, "Category created successfully", category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Categories fetched successfully", categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid category ID")
		return
	}

	category, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Category fetched successfully", category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid category ID")
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Category updated successfully", category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid category ID")
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Category deleted successfully", nil)
}

func parseID(c *gin.Context, param string) (int64, error) {
	return strconv.ParseInt(c.Param(param), 10, 64)
}
