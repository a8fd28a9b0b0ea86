package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"minishop-storefront/internal/domain"
	catalogsvc "minishop-storefront/internal/service/catalog"
)

type productHandlers struct {
	catalog *catalogsvc.Service
}

// list serves the catalog source contract: optional category/sort query
// parameters, response is a JSON array of product records.
func (h *productHandlers) list(c *gin.Context) {
	params := catalogsvc.QueryParams{
		Category: c.Query("category"),
		Sort:     catalogsvc.ParseSortOrder(c.Query("sort")),
	}
	res, err := h.catalog.Query(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found", "category": params.Category})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, res.Products)
}

func (h *productHandlers) get(c *gin.Context) {
	p, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *productHandlers) categories(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Categories())
}

type categoryPageResponse struct {
	Category string               `json:"category"`
	Sort     catalogsvc.SortOrder `json:"sort"`
	View     catalogsvc.ViewMode  `json:"view"`
	Products []domain.Product     `json:"products"`
}

// categoryPage backs the category listing page: filter then sort, with the
// view mode threaded through unchanged so navigation links keep it.
func (h *productHandlers) categoryPage(c *gin.Context) {
	params := catalogsvc.QueryParams{
		Category: c.Param("slug"),
		Sort:     catalogsvc.ParseSortOrder(c.Query("sort")),
		View:     catalogsvc.ParseViewMode(c.Query("view")),
	}
	res, err := h.catalog.Query(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found", "category": params.Category})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, categoryPageResponse{
		Category: res.Category,
		Sort:     res.Sort,
		View:     res.View,
		Products: res.Products,
	})
}
