package main

import (
	"os"
	"os/signal"
	"syscall"

	"grocery-api/internal/handler"
	"grocery-api/internal/model"
	"grocery-api/internal/repository"
	"grocery-api/internal/service"
	"grocery-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool for managed environments)
	db.AutoMigrate(&model.Category{}, &model.Product{}, &model.Invoice{}, &model.InvoiceItem{})

	// 3. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)

	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, productRepo, db)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Grocery API v" + handler.Version,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	app.Get("/health", handler.Health)

	api := app.Group("/api/v1")

	// Category Routes
	api.Get("/categories", categoryHandler.List)
	api.Post("/categories", categoryHandler.Create)
	api.Get("/categories/:id", categoryHandler.Show)
	api.Put("/categories/:id", categoryHandler.Update)
	api.Delete("/categories/:id", categoryHandler.Delete)

	// Product Routes (barcode lookup registered before :id)
	api.Get("/products", productHandler.List)
	api.Post("/products", productHandler.Create)
	api.Get("/products/barcode/:barcode", productHandler.FindByBarcode)
	api.Get("/products/:id", productHandler.Show)
	api.Put("/products/:id", productHandler.Update)
	api.Delete("/products/:id", productHandler.Delete)

	// Invoice Routes
	api.Get("/invoices", invoiceHandler.List)
	api.Post("/invoices", invoiceHandler.Create)
	api.Get("/invoices/:id", invoiceHandler.Show)
	api.Put("/invoices/:id", invoiceHandler.Update)
	api.Delete("/invoices/:id", invoiceHandler.Delete)
	api.Post("/invoices/:id/items", invoiceHandler.AddItem)
	api.Delete("/invoices/:id/items/:itemId", invoiceHandler.RemoveItem)

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic().Err(err).Msg("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
