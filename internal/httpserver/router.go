package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires all storefront and admin routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", cartSessionHeader)
		corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, cartSessionHeader)
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.Use(currentUserMiddleware(deps.ProfileSvc))

	api.GET("/categories", listCategoriesHandler(deps.CategorySvc))
	api.GET("/products", listProductsHandler(deps.ProductSvc))
	api.GET("/products/:id", getProductHandler(deps.ProductSvc))
	api.GET("/workers", listWorkersHandler(deps.WorkerSvc))
	api.GET("/workers/:id", getWorkerHandler(deps.WorkerSvc))
	api.GET("/workers/:id/reviews", listReviewsHandler(deps.ReviewSvc))
	api.POST("/workers/:id/reviews", createReviewHandler(deps.ReviewSvc))
	api.POST("/workers/:id/requests", createWorkRequestHandler(deps.RequestSvc))
	api.GET("/services", listServicesHandler(deps.ServiceSvc))
	api.GET("/gallery", listGalleryHandler(deps.GallerySvc))

	api.GET("/cart", getCartHandler(deps.Carts))
	api.POST("/cart/items", addCartItemHandler(deps.Carts, deps.ProductSvc))
	api.PATCH("/cart/items/:productId", updateCartItemHandler(deps.Carts))
	api.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Carts))
	api.DELETE("/cart", clearCartHandler(deps.Carts))
	api.POST("/checkout", checkoutHandler(deps.Carts, deps.OrderSvc))

	api.POST("/auth/signup", signupHandler(deps.ProfileSvc))
	api.POST("/auth/login", loginHandler(deps.ProfileSvc))
	api.POST("/auth/logout", logoutHandler(deps.ProfileSvc))
	api.GET("/auth/me", meHandler())

	admin := api.Group("/admin")
	admin.Use(requireUser())
	admin.GET("/orders", listOrdersHandler(deps.OrderSvc))
	admin.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))
	admin.GET("/requests", listWorkRequestsHandler(deps.RequestSvc))
	admin.PATCH("/requests/:id/status", updateWorkRequestStatusHandler(deps.RequestSvc))
	admin.POST("/products", createProductHandler(deps.ProductSvc))
	admin.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
	admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))
	admin.POST("/categories", createCategoryHandler(deps.CategorySvc))
	admin.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc))
	admin.POST("/workers", createWorkerHandler(deps.WorkerSvc))
	admin.PUT("/workers/:id", updateWorkerHandler(deps.WorkerSvc))
	admin.DELETE("/workers/:id", deleteWorkerHandler(deps.WorkerSvc))
	admin.POST("/services", createServiceHandler(deps.ServiceSvc))
	admin.PUT("/services/:id", updateServiceHandler(deps.ServiceSvc))
	admin.DELETE("/services/:id", deleteServiceHandler(deps.ServiceSvc))
	admin.POST("/gallery", createGalleryItemHandler(deps.GallerySvc))
	admin.DELETE("/gallery/:id", deleteGalleryItemHandler(deps.GallerySvc))

	return router
}
