package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"glowy/internal/handlers"
	"glowy/internal/models"
	"glowy/internal/repositories"
	"glowy/internal/services"
	"glowy/pkg/database"
)

func main() {
	// --- Configuration ---
	// Viper reads from environment variables, with sensible local defaults.
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite") // sqlite, postgres, or memory
	viper.SetDefault("DB_DSN", "glowy.db")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	dbDriver := viper.GetString("DB_DRIVER")
	dbDSN := viper.GetString("DB_DSN")

	// --- Initialize Repository ---
	// DB_DRIVER=memory runs entirely in-process, handy for demos and quick
	// local poking without a database file.
	var productRepo repositories.ProductRepository
	if dbDriver == "memory" {
		repo := repositories.NewMockProductRepository()
		seedProducts(repo)
		productRepo = repo
	} else {
		db, err := database.Open(dbDriver, dbDSN)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		if err := db.AutoMigrate(&models.Product{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		productRepo = repositories.NewGORMProductRepository(db)
	}

	// --- Initialize Service and Handler ---
	productService := services.NewProductService(productRepo)
	productHandler := handlers.NewProductHandler(productService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New()) // Turn panics into 500s instead of dropping the connection
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	productHandler.RegisterRoutes(app)

	// --- Welcome / Health Endpoints ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":     "Bienvenido a Glowy API - Skincare Coreano",
			"description": "API para gestion de productos de belleza coreanos",
		})
	})
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "pong",
			"service": "Glowy API",
		})
	})
	// Browsers ask for this on every visit; answer 204 to keep the logs quiet.
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s (driver: %s)", appPort, dbDriver)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedProducts populates the in-memory repository with a few skincare items
// so the API has data to show out of the box.
func seedProducts(repo repositories.ProductRepository) {
	snailDesc := "Crema todo en uno con 92% de mucina de caracol"
	products := []models.Product{
		{Name: "COSRX Advanced Snail 92 All In One Cream", Category: "Moisturizer", Price: 28.50, Stock: 75, Description: &snailDesc},
		{Name: "Beauty of Joseon Glow Serum", Category: "Serum", Price: 17.00, Stock: 120},
		{Name: "Isntree Hyaluronic Acid Toner", Category: "Toner", Price: 15.90, Stock: 60},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %d)", products[i].Name, products[i].ID)
		}
	}
}
