package httpserver

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"minishop-storefront/internal/auth"
	"minishop-storefront/internal/domain"
	cartsvc "minishop-storefront/internal/service/cart"
	checkoutsvc "minishop-storefront/internal/service/checkout"
)

// checkoutHandlers own the active checkout session. The checkout screen has
// exclusive ownership: entering checkout replaces any previous session, and
// the session is discarded when a fresh one starts.
type checkoutHandlers struct {
	mu      sync.Mutex
	session *checkoutsvc.Session
	cart    *cartsvc.Store
	auth    auth.Capability
}

func newCheckoutHandlers(cart *cartsvc.Store, capability auth.Capability) *checkoutHandlers {
	return &checkoutHandlers{cart: cart, auth: capability}
}

type checkoutStateResponse struct {
	Step     domain.Step             `json:"step"`
	Shipping *domain.ShippingDetails `json:"shipping,omitempty"`
	Snapshot *domain.CartSnapshot    `json:"snapshot,omitempty"`
	Order    *domain.Order           `json:"order,omitempty"`
	// LoginPrompt is a non-blocking hint: unauthenticated customers may
	// still complete checkout.
	LoginPrompt bool `json:"loginPrompt"`
}

func (h *checkoutHandlers) stateResponse(c *gin.Context, sess *checkoutsvc.Session) checkoutStateResponse {
	resp := checkoutStateResponse{
		Step:        sess.Step(),
		Shipping:    sess.Shipping(),
		Order:       sess.Order(),
		LoginPrompt: !h.auth.IsAuthenticated(c.Request),
	}
	if snap, ok := sess.ReviewSnapshot(); ok {
		resp.Snapshot = &snap
	}
	return resp
}

// enter starts a checkout session. An empty cart refuses entry so the page
// can redirect to its empty-cart state.
func (h *checkoutHandlers) enter(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, err := checkoutsvc.NewSession(h.cart)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{"error": domain.ErrEmptyCart.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout unavailable"})
		return
	}
	h.session = sess
	c.JSON(http.StatusCreated, h.stateResponse(c, sess))
}

func (h *checkoutHandlers) state(c *gin.Context) {
	sess := h.current()
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(c, sess))
}

func (h *checkoutHandlers) submitShipping(c *gin.Context) {
	sess := h.current()
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return
	}
	var form checkoutsvc.ShippingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed shipping form"})
		return
	}
	fieldErrs, err := sess.SubmitShipping(form)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"fieldErrors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(c, sess))
}

func (h *checkoutHandlers) back(c *gin.Context) {
	sess := h.current()
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return
	}
	if err := sess.Back(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(c, sess))
}

func (h *checkoutHandlers) placeOrder(c *gin.Context) {
	sess := h.current()
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return
	}
	order, err := sess.PlaceOrder()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "step": domain.StepConfirmed})
}

func (h *checkoutHandlers) current() *checkoutsvc.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session
}
