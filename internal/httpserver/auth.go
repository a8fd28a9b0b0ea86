package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"minishop-storefront/internal/auth"
)

type authHandlers struct {
	auth *auth.Service
}

type loginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *authHandlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed login request"})
		return
	}
	token, user, err := h.auth.Login(req.Email, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid email required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
