package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"minishop-storefront/internal/domain"
	"minishop-storefront/internal/notify"
	cartsvc "minishop-storefront/internal/service/cart"
	catalogsvc "minishop-storefront/internal/service/catalog"
)

type cartHandlers struct {
	catalog  *catalogsvc.Service
	cart     *cartsvc.Store
	notifier notify.Notifier
}

type cartResponse struct {
	Lines   []domain.CartLine `json:"lines"`
	Summary cartsvc.Summary   `json:"summary"`
}

func (h *cartHandlers) payload() cartResponse {
	return cartResponse{
		Lines: h.cart.Lines(),
		Summary: cartsvc.Summary{
			TotalItems:    h.cart.TotalItems(),
			SubtotalCents: h.cart.SubtotalCents(),
		},
	}
}

func (h *cartHandlers) get(c *gin.Context) {
	c.JSON(http.StatusOK, h.payload())
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

func (h *cartHandlers) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
		return
	}
	product, err := h.catalog.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	h.cart.Add(*product)
	h.notifier.Success("added to cart")
	c.JSON(http.StatusOK, h.payload())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *cartHandlers) updateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
		return
	}
	h.cart.UpdateQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, h.payload())
}

func (h *cartHandlers) removeItem(c *gin.Context) {
	h.cart.Remove(c.Param("id"))
	h.notifier.Success("removed from cart")
	c.JSON(http.StatusOK, h.payload())
}
