package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"campuswear/internal/config"
	"campuswear/internal/database"
	"campuswear/internal/handlers"
	"campuswear/internal/middleware"
	"campuswear/internal/store"
	"campuswear/internal/store/memory"
	"campuswear/internal/store/mongodb"
)

func main() {
	config.Load()
	cfg := config.AppEnv

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	var (
		products store.ProductStore
		orders   store.OrderStore
		users    store.UserStore
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		mem := memory.New()
		products, orders, users = mem, mem, mem
		log.Println("store: in-memory backend (data is lost on restart)")
	case config.DriverMongo:
		client, err := database.Connect(cfg.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		db := client.Database(cfg.DBName)
		log.Println("MongoDB connected to:", db.Name())

		if err := database.EnsureProductIndexes(db); err != nil {
			log.Println("product index warning:", err)
		}
		if err := database.EnsureOrderIndexes(db); err != nil {
			log.Println("order index warning:", err)
		}
		if err := database.EnsureUserIndexes(db); err != nil {
			log.Println("user index warning:", err)
		}

		mdb := mongodb.New(db)
		products, orders, users = mdb, mdb, mdb
	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	r := gin.Default()

	r.GET("/products", handlers.ListProducts(products))
	r.GET("/products/:id", handlers.GetProduct(products))

	r.POST("/auth/register", handlers.Register(users, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL))
	r.POST("/auth/login", handlers.Login(users, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL))
	r.POST("/auth/refresh", handlers.Refresh(users, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL))
	r.POST("/auth/logout", handlers.Logout(users))
	r.GET("/auth/me", middleware.UserAuth(cfg.JWTSecret), handlers.GetMe(users))

	r.POST("/admin/login", handlers.AdminLogin(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.AccessTokenTTL))

	user := r.Group("/orders")
	user.Use(middleware.UserAuth(cfg.JWTSecret))
	{
		user.POST("", handlers.CreateOrder(orders, products))
		user.GET("/mine", handlers.ListMyOrders(orders))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/products", handlers.ListProducts(products))
		admin.POST("/products", handlers.CreateProduct(products))
		admin.PUT("/products/:id", handlers.UpdateProduct(products))
		admin.DELETE("/products/:id", handlers.DeleteProduct(products))

		admin.GET("/orders", handlers.ListOrders(orders))
		admin.GET("/orders/:id", handlers.GetOrder(orders))
		admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(orders))
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
