package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kunjcreation/internal/config"
	"kunjcreation/internal/database"
	"kunjcreation/internal/handlers"
	"kunjcreation/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureCounterIndexes(db); err != nil {
		log.Printf("counter index warning: %v", err)
	}
	if err := database.EnsureCatalogIndexes(db); err != nil {
		log.Printf("catalog index warning: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.Monitoring())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/api/products", handlers.GetProducts(db))
	r.GET("/api/products/:id", handlers.GetProduct(db))
	r.GET("/api/accessories", handlers.GetAccessories(db))
	r.GET("/api/accessories/:id", handlers.GetAccessory(db))
	r.GET("/api/slider", handlers.GetSlides(db))

	user := r.Group("/api")
	user.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		user.POST("/orders/create", handlers.CreateOrder(db))
		user.GET("/orders/myorders", handlers.GetMyOrders(db))
		user.GET("/users/me", handlers.GetMe(db))
	}

	admin := r.Group("/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/orders", handlers.GetOrders(db))
		admin.GET("/orders/user/:userId", handlers.GetOrdersByUser(db))
		admin.DELETE("/orders/reset", handlers.ResetOrders(db))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(db))

		admin.POST("/products", handlers.CreateProduct(db))
		admin.PUT("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))

		admin.POST("/accessories", handlers.CreateAccessory(db))
		admin.PUT("/accessories/:id", handlers.UpdateAccessory(db))
		admin.DELETE("/accessories/:id", handlers.DeleteAccessory(db))

		admin.POST("/slider", handlers.CreateSlide(db))
		admin.DELETE("/slider/:id", handlers.DeleteSlide(db))

		admin.GET("/users", handlers.GetUsers(db))
		admin.DELETE("/users/:id", handlers.DeleteUser(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
