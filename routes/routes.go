package routes

import (
	"esencia-shop/controllers"
	"esencia-shop/middleware"
	"esencia-shop/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	perfumeRepo := repositories.NewPerfumeRepository()
	cartRepo := repositories.NewCartRepository()

	authCtrl := controllers.NewAuthController()
	perfumeCtrl := controllers.NewPerfumeController(perfumeRepo)
	cartCtrl := controllers.NewCartController(cartRepo, perfumeRepo)
	checkoutCtrl := controllers.NewCheckoutController(cartRepo)
	orderCtrl := controllers.NewOrderController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)

	router.GET("/categories", perfumeCtrl.GetCategories)
	router.GET("/perfumes", perfumeCtrl.GetPerfumes)
	router.GET("/perfumes/brands", perfumeCtrl.GetBrands)
	router.GET("/perfumes/:id", perfumeCtrl.GetPerfumeByID)

	cart := router.Group("/cart")
	cart.Use(middleware.CartTokenMiddleware())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.SetQuantity)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/profile/photo", authCtrl.UpdateProfilePhoto)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetMyOrderByID)
	}

	checkout := router.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(), middleware.CartTokenMiddleware())
	{
		checkout.POST("", checkoutCtrl.Checkout)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", orderCtrl.GetDashboard)

		admin.POST("/perfumes", perfumeCtrl.CreatePerfume)
		admin.PATCH("/perfumes/:id", perfumeCtrl.UpdatePerfume)
		admin.DELETE("/perfumes/:id", perfumeCtrl.DeletePerfume)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}

	router.Static("/uploads", "./uploads")
}
