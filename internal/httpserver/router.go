package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"minishop-storefront/internal/auth"
	"minishop-storefront/internal/notify"
	cartsvc "minishop-storefront/internal/service/cart"
	catalogsvc "minishop-storefront/internal/service/catalog"
	wishlistsvc "minishop-storefront/internal/service/wishlist"
)

// Deps carries the services the router exposes.
type Deps struct {
	Catalog  *catalogsvc.Service
	Cart     *cartsvc.Store
	Wishlist *wishlistsvc.Store
	Auth     *auth.Service
	Notifier notify.Notifier
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	products := &productHandlers{catalog: deps.Catalog}
	api.GET("/products", products.list)
	api.GET("/products/:id", products.get)
	api.GET("/categories", products.categories)
	api.GET("/category/:slug", products.categoryPage)

	cart := &cartHandlers{catalog: deps.Catalog, cart: deps.Cart, notifier: deps.Notifier}
	api.GET("/cart", cart.get)
	api.POST("/cart/items", cart.addItem)
	api.PATCH("/cart/items/:id", cart.updateQuantity)
	api.DELETE("/cart/items/:id", cart.removeItem)

	wishlist := &wishlistHandlers{catalog: deps.Catalog, wishlist: deps.Wishlist, auth: deps.Auth, notifier: deps.Notifier}
	api.GET("/wishlist", wishlist.list)
	api.POST("/wishlist/toggle", wishlist.toggle)

	checkout := newCheckoutHandlers(deps.Cart, deps.Auth)
	api.POST("/checkout", checkout.enter)
	api.GET("/checkout", checkout.state)
	api.POST("/checkout/shipping", checkout.submitShipping)
	api.POST("/checkout/back", checkout.back)
	api.POST("/checkout/order", checkout.placeOrder)

	login := &authHandlers{auth: deps.Auth}
	api.POST("/auth/login", login.login)

	return router
}
