package router

import (
	"net/http"
	"time"

	"atolye/adminauth"
	"atolye/api"
	"atolye/config"
	_ "atolye/docs"
	"atolye/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires the storefront and admin APIs.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())
	r.Use(middleware.Metrics())

	// Admin console API, cookie-authenticated.
	adminHandler := api.NewAdminHandler()
	passwordResetHandler := api.NewPasswordResetHandler(cfg)
	admin := r.Group("/admin")
	{
		admin.POST("/login", middleware.LoginRateLimit(5, time.Minute), adminHandler.AdminLogin)
		admin.POST("/logout", adminHandler.AdminLogout)

		// Password reset works without a session.
		admin.POST("/password/request-reset", passwordResetHandler.RequestPasswordReset)
		admin.GET("/password/verify-token", passwordResetHandler.VerifyResetToken)
		admin.POST("/password/reset", passwordResetHandler.ResetPassword)

		adminAuth := admin.Group("")
		adminAuth.Use(AdminAuthMiddleware())
		{
			adminAuth.GET("/me", adminHandler.GetCurrentUserInfo)
			adminAuth.GET("/statistics", adminHandler.GetStatistics)

			productHandler := api.NewProductHandler()
			adminAuth.GET("/products", productHandler.AdminList)
			adminAuth.POST("/products", productHandler.Create)
			adminAuth.PUT("/products/:id", productHandler.Update)
			adminAuth.DELETE("/products/:id", productHandler.Delete)

			categoryHandler := api.NewCategoryHandler()
			adminAuth.GET("/categories", categoryHandler.List)
			adminAuth.POST("/categories", categoryHandler.Create)
			adminAuth.PUT("/categories/:id", categoryHandler.Update)
			adminAuth.DELETE("/categories/:id", categoryHandler.Delete)

			collectionHandler := api.NewCollectionHandler()
			adminAuth.GET("/collections", collectionHandler.List)
			adminAuth.POST("/collections", collectionHandler.Create)
			adminAuth.PUT("/collections/:id", collectionHandler.Update)
			adminAuth.DELETE("/collections/:id", collectionHandler.Delete)

			menuHandler := api.NewMenuHandler()
			adminAuth.GET("/menus", menuHandler.List)
			adminAuth.POST("/menus", menuHandler.Create)
			adminAuth.PUT("/menus/:id", menuHandler.Update)
			adminAuth.DELETE("/menus/:id", menuHandler.Delete)
			adminAuth.POST("/menus/:id/move-up", menuHandler.MoveUp)
			adminAuth.POST("/menus/:id/move-down", menuHandler.MoveDown)

			pageHandler := api.NewPageContentHandler()
			adminAuth.GET("/pages/:key", pageHandler.GetPageForEdit)
			adminAuth.PUT("/pages/:key", pageHandler.UpdatePage)

			orderHandler := api.NewOrderHandler(cfg)
			adminAuth.GET("/orders", orderHandler.List)
			adminAuth.GET("/orders/notifications", orderHandler.Notifications)
			adminAuth.POST("/orders/notifications/:id/read", orderHandler.MarkNotificationRead)
			adminAuth.GET("/orders/:id", orderHandler.Get)
			adminAuth.PUT("/orders/:id/status", orderHandler.UpdateStatus)

			settingHandler := api.NewSettingHandler()
			adminAuth.GET("/settings", settingHandler.List)
			adminAuth.PUT("/settings", settingHandler.Update)

			exportHandler := api.NewExportHandler()
			adminAuth.GET("/export/csv", exportHandler.ExportCSV)
			adminAuth.GET("/export/excel", exportHandler.ExportExcel)
		}
	}

	// Swagger docs.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Storefront API.
	v1 := r.Group("/api/v1")
	{
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
		}

		productHandler := api.NewProductHandler()
		v1.GET("/products", productHandler.List)
		v1.GET("/products/:id", productHandler.Get)

		categoryHandler := api.NewCategoryHandler()
		v1.GET("/categories", categoryHandler.List)

		collectionHandler := api.NewCollectionHandler()
		v1.GET("/collections", collectionHandler.List)

		menuHandler := api.NewMenuHandler()
		v1.GET("/menu", menuHandler.PublicMenu)

		pageHandler := api.NewPageContentHandler()
		v1.GET("/pages/:key", pageHandler.GetPage)

		settingHandler := api.NewSettingHandler()
		v1.GET("/settings", settingHandler.PublicSettings)

		orderHandler := api.NewOrderHandler(cfg)
		v1.POST("/orders", orderHandler.Checkout)
		v1.GET("/orders/track", orderHandler.Track)

		// Routes that need a signed-in customer.
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/profile", authHandler.UpdateProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			favoriteHandler := api.NewFavoriteHandler()
			authorized.GET("/favorites", favoriteHandler.List)
			authorized.POST("/favorites", favoriteHandler.Add)
			authorized.DELETE("/favorites/:productId", favoriteHandler.Remove)
		}
	}

	// Prometheus scrape endpoint.
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	// Health check.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware allows the browser storefront and admin SPA to call the API
// cross-origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// AdminAuthMiddleware guards the admin console with signed session cookies.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := adminauth.GetVerifiedAdminUserID(c); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Lütfen önce giriş yapın",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
