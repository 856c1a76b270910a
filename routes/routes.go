package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/configs"
	"github.com/samir25141/SwiggyCloneBySamir/controllers"
	"github.com/samir25141/SwiggyCloneBySamir/middlewares"
	"github.com/samir25141/SwiggyCloneBySamir/repository"
	"github.com/samir25141/SwiggyCloneBySamir/services"
	"github.com/samir25141/SwiggyCloneBySamir/upstream"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Upstream adapter (+ Redis cache ถ้า config ไว้)
	var cache *upstream.Cache
	if cfg.RedisAddr != "" {
		cache = upstream.NewCache(cfg.RedisAddr)
	}
	swiggy := upstream.NewClient(cfg.UpstreamBaseURL, cache)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo)
	favSvc := services.NewFavoriteService(favRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)
	restSvc := services.NewRestaurantService(swiggy)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	favCtrl := controllers.NewFavoriteController(favSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}
	auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Restaurants (public)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id/menu", restCtrl.Menu)

	// Protected
	protected := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/cart", cartCtrl.Get)
		protected.PUT("/cart", cartCtrl.Save)

		protected.POST("/favorites", favCtrl.Save)
		protected.GET("/favorites", favCtrl.List)
		protected.DELETE("/favorites/:restaurantId", favCtrl.Remove)

		protected.POST("/orders", orderCtrl.Create)
		protected.GET("/orders", orderCtrl.List)
	}
}
