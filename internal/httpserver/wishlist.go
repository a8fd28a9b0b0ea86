package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"minishop-storefront/internal/auth"
	"minishop-storefront/internal/domain"
	"minishop-storefront/internal/notify"
	catalogsvc "minishop-storefront/internal/service/catalog"
	wishlistsvc "minishop-storefront/internal/service/wishlist"
)

type wishlistHandlers struct {
	catalog  *catalogsvc.Service
	wishlist *wishlistsvc.Store
	auth     auth.Capability
	notifier notify.Notifier
}

func (h *wishlistHandlers) list(c *gin.Context) {
	if !h.auth.IsAuthenticated(c.Request) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrLoginRequired.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.wishlist.Items()})
}

type toggleRequest struct {
	ProductID string `json:"productId"`
}

// toggle gates the wishlist mutation on the authentication capability. An
// unauthenticated caller gets the login-required signal and no state change.
func (h *wishlistHandlers) toggle(c *gin.Context) {
	if !h.auth.IsAuthenticated(c.Request) {
		h.notifier.Error("login required")
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrLoginRequired.Error()})
		return
	}
	var req toggleRequest
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
	inWishlist := h.wishlist.Toggle(*product)
	if inWishlist {
		h.notifier.Success("added to wishlist")
	} else {
		h.notifier.Success("removed from wishlist")
	}
	c.JSON(http.StatusOK, gin.H{"productId": product.ID, "inWishlist": inWishlist})
}
