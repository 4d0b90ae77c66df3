package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hannahbenyin498-lang/inventory-system/internal/handler"
	"github.com/hannahbenyin498-lang/inventory-system/internal/middleware"
	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/repository"
	"github.com/hannahbenyin498-lang/inventory-system/internal/service"
	"github.com/hannahbenyin498-lang/inventory-system/internal/ws"
	"github.com/hannahbenyin498-lang/inventory-system/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.Sale{}, &model.Setting{}, &model.CategoryThreshold{}, &model.User{})

	// 3. Seed default users (admin/admin, user/user — change after first login)
	seedUsers(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	thresholdRepo := repository.NewThresholdRepo(db)
	dashRepo := repository.NewDashboardRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(productRepo, thresholdRepo, db, wsHub)
	salesService := service.NewSalesService(saleRepo, thresholdRepo, db, wsHub)
	csvService := service.NewCSVService(productRepo, thresholdRepo, db)
	thresholdService := service.NewThresholdService(thresholdRepo, productRepo)
	dashService := service.NewDashboardService(dashRepo, thresholdService)
	authService := service.NewAuthService(userRepo)

	imageDir := os.Getenv("IMAGE_DIR")
	if imageDir == "" {
		imageDir = "images"
	}

	invHandler := handler.NewInventoryHandler(invService)
	salesHandler := handler.NewSalesHandler(salesService)
	csvHandler := handler.NewCSVHandler(csvService)
	thresholdHandler := handler.NewThresholdHandler(thresholdService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)
	imageHandler := handler.NewImageHandler(imageDir)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Store Inventory v1.0",
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Product images are served statically; the API only ever stores
	// their relative paths.
	app.Static("/images", imageDir)

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/dashboard", dashHandler.GetDashboard)

	protected.Get("/inventory", invHandler.GetProducts)
	protected.Post("/inventory", invHandler.CreateProduct)
	protected.Get("/inventory/:id", invHandler.GetProduct)
	protected.Put("/inventory/:id", invHandler.UpdateProduct)
	protected.Delete("/inventory/:id", middleware.RequireAdmin(), invHandler.DeleteProduct)

	protected.Get("/sales", salesHandler.GetSales)
	protected.Post("/sales", salesHandler.CreateSale)

	protected.Post("/import-csv", csvHandler.ImportCSV)
	protected.Get("/export-csv", csvHandler.ExportCSV)

	protected.Post("/upload-image", imageHandler.UploadImage)

	protected.Get("/categories", invHandler.GetCategories)

	protected.Get("/thresholds", thresholdHandler.GetThresholds)
	protected.Put("/thresholds/default", thresholdHandler.SetDefault)
	protected.Put("/thresholds/:category", thresholdHandler.SetOverride)
	protected.Delete("/thresholds/:category", thresholdHandler.ClearOverride)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedUsers creates the default admin and staff accounts on an empty
// users table.
func seedUsers(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	count, err := userRepo.Count()
	if err != nil || count > 0 {
		return
	}

	seed := []struct {
		username, password, role string
	}{
		{"admin", "admin", model.RoleAdmin},
		{"user", "user", model.RoleStaff},
	}
	for _, s := range seed {
		u := &model.User{Username: s.username, Role: s.role}
		if err := u.SetPassword(s.password); err != nil {
			log.Printf("Warning: failed to hash password for %s: %v", s.username, err)
			continue
		}
		if err := userRepo.Create(u); err != nil {
			log.Printf("Warning: failed to seed user %s: %v", s.username, err)
		} else {
			log.Printf("Seeded user %s (%s)", s.username, s.role)
		}
	}
}
