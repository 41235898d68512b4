package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Store      *handler.StoreHandler
	Product    *handler.ProductHandler
	Category   *handler.CategoryHandler
	Section    *handler.SectionHandler
	Banner     *handler.BannerHandler
	Order      *handler.OrderHandler
	Payment    *handler.PaymentHandler
	Customer   *handler.CustomerHandler
	Upload     *handler.UploadHandler
	Storefront *handler.StorefrontHandler
	Cart       *handler.CartHandler
	Checkout   *handler.CheckoutHandler
}

// Dependencies carries the cross-cutting pieces the route groups need
type Dependencies struct {
	Config        *config.Config
	Logger        *zap.Logger
	JWTService    *auth.JWTService
	Blacklist     auth.TokenBlacklist
	StoreResolver middleware.StoreResolver
}

// Setup mounts all routes on the engine. The API splits into three
// surfaces: merchant auth, the merchant dashboard, and the public
// storefront scoped by store slug.
func Setup(engine *gin.Engine, d Dependencies, h Handlers) {
	engine.GET("/health", h.Health.Health)
	engine.GET("/ready", h.Health.Ready)

	api := engine.Group("/api/v1")

	merchantAuth := middleware.MerchantAuth(d.JWTService, d.Blacklist, d.Logger)
	customerAuth := middleware.CustomerAuth(d.JWTService, d.Blacklist, d.Logger)

	registerAuthRoutes(api, d, h, merchantAuth)
	registerDashboardRoutes(api, h, merchantAuth)
	registerStorefrontRoutes(api, d, h, customerAuth)
}

// registerAuthRoutes mounts merchant authentication and store signup
func registerAuthRoutes(api *gin.RouterGroup, d Dependencies, h Handlers, merchantAuth gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	if d.Config.HTTP.AuthRateLimitEnabled {
		authGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Requests: d.Config.HTTP.AuthRateLimitRequests,
			Window:   d.Config.HTTP.AuthRateLimitWindow,
		}))
	}

	authGroup.POST("/register", h.Store.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.Refresh)

	authed := authGroup.Group("", merchantAuth)
	authed.POST("/logout", h.Auth.Logout)
	authed.GET("/me", h.Auth.Me)
	authed.POST("/password", h.Auth.ChangePassword)
}

// registerDashboardRoutes mounts the merchant dashboard API
func registerDashboardRoutes(api *gin.RouterGroup, h Handlers, merchantAuth gin.HandlerFunc) {
	dash := api.Group("/dashboard", merchantAuth)

	dash.GET("/store", h.Store.Get)
	dash.PUT("/store", h.Store.Update)

	dash.GET("/users", h.Store.ListUsers)
	dash.POST("/users", h.Store.CreateUser)
	dash.DELETE("/users/:id", h.Store.RemoveUser)

	dash.GET("/products", h.Product.List)
	dash.POST("/products", h.Product.Create)
	dash.GET("/products/low-stock", h.Product.LowStock)
	dash.GET("/products/:id", h.Product.Get)
	dash.PUT("/products/:id", h.Product.Update)
	dash.PUT("/products/:id/status", h.Product.SetStatus)
	dash.DELETE("/products/:id", h.Product.Delete)

	dash.GET("/categories", h.Category.List)
	dash.POST("/categories", h.Category.Create)
	dash.PUT("/categories/:id", h.Category.Update)
	dash.DELETE("/categories/:id", h.Category.Delete)

	dash.GET("/sections", h.Section.List)
	dash.POST("/sections", h.Section.Create)
	dash.PUT("/sections/reorder", h.Section.Reorder)
	dash.PUT("/sections/:id", h.Section.Update)
	dash.DELETE("/sections/:id", h.Section.Delete)

	dash.GET("/banners", h.Banner.List)
	dash.POST("/banners", h.Banner.Create)
	dash.PUT("/banners/:id", h.Banner.Update)
	dash.DELETE("/banners/:id", h.Banner.Delete)

	dash.GET("/orders", h.Order.List)
	dash.GET("/orders/:id", h.Order.Get)
	dash.PUT("/orders/:id/status", h.Order.UpdateStatus)
	dash.GET("/orders/:id/payments", h.Payment.ListForOrder)

	dash.GET("/payments", h.Payment.List)
	dash.POST("/payments", h.Payment.Create)
	dash.GET("/payments/:id", h.Payment.Get)
	dash.POST("/payments/:id/confirm", h.Payment.Confirm)
	dash.POST("/payments/:id/fail", h.Payment.Fail)
	dash.POST("/payments/:id/refund", h.Payment.Refund)

	dash.GET("/customers", h.Customer.List)
	dash.GET("/customers/:id", h.Customer.Get)
	dash.PUT("/customers/:id/status", h.Customer.SetStatus)

	dash.POST("/uploads", h.Upload.CreateUploadURL)
}

// registerStorefrontRoutes mounts the public shop API under the store
// slug. Cart routes ride on the session cookie; checkout and account
// routes require a customer token issued for the same store.
func registerStorefrontRoutes(api *gin.RouterGroup, d Dependencies, h Handlers, customerAuth gin.HandlerFunc) {
	cartTTL := int(d.Config.Session.CartTTL.Seconds())

	shop := api.Group("/store/:slug",
		middleware.ResolveStore(d.StoreResolver),
		middleware.CartSession(d.Config.Cookie, cartTTL),
	)

	shop.GET("", h.Storefront.Store)
	shop.GET("/home", h.Storefront.Home)
	shop.GET("/sections/products", h.Storefront.SectionProducts)
	shop.GET("/categories", h.Storefront.Categories)
	shop.GET("/categories/:id/products", h.Storefront.CategoryProducts)
	shop.GET("/banners", h.Storefront.Banners)
	shop.GET("/search", h.Storefront.Search)
	shop.GET("/products/:productSlug", h.Storefront.Product)

	shop.GET("/cart", h.Cart.Get)
	shop.POST("/cart/items", h.Cart.AddItem)
	shop.PUT("/cart/items/:productId", h.Cart.SetQuantity)
	shop.DELETE("/cart/items/:productId", h.Cart.RemoveItem)
	shop.DELETE("/cart", h.Cart.Clear)

	shop.POST("/customers/register", h.Customer.Register)
	shop.POST("/customers/login", h.Customer.Login)
	shop.POST("/customers/refresh", h.Customer.Refresh)

	account := shop.Group("", customerAuth)
	account.POST("/customers/logout", h.Customer.Logout)
	account.GET("/customers/me", h.Customer.Me)
	account.PUT("/customers/me", h.Customer.UpdateProfile)
	account.POST("/customers/me/password", h.Customer.ChangePassword)

	account.POST("/checkout", h.Checkout.Checkout)
	account.GET("/orders", h.Checkout.MyOrders)
	account.GET("/orders/:id", h.Checkout.MyOrder)
}
