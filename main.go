package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eshop/internal/handlers"
	"eshop/internal/middleware"
	"eshop/internal/models"
	"eshop/internal/repositories"
	"eshop/internal/services"
	"eshop/pkg/events"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "eshop.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables catalog events
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	dbDriver := viper.GetString("DB_DRIVER")
	dbDSN := viper.GetString("DB_DSN")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Database ---
	db, err := openDatabase(dbDriver, dbDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Favorite{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Catalog event publisher (optional) ---
	var mqClient *events.Client
	if rabbitMQURL != "" {
		mqClient, err = events.NewClient(events.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	seedDatabase(userRepo, categoryRepo)

	// --- Services ---
	catalogService := services.NewCatalogService(productRepo)
	productService := services.NewProductService(productRepo, categoryRepo, mqClient)
	categoryService := services.NewCategoryService(categoryRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, productRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(catalogService, productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	optionalAuth := middleware.OptionalAuth(authService)
	authRequired := middleware.AuthRequired(authService)
	adminRequired := middleware.AdminRequired()

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1, authRequired)
	productHandler.RegisterRoutes(apiV1, optionalAuth, authRequired, adminRequired)
	categoryHandler.RegisterRoutes(apiV1, authRequired, adminRequired)
	favoriteHandler.RegisterRoutes(apiV1, authRequired)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Catalog event consumer ---
	// Logs change events; a search indexer or cache invalidator would hook in
	// here.
	if mqClient != nil {
		if consumerErr := mqClient.ConsumeCatalogEvents(func(msg amqp.Delivery) error {
			log.Printf("Received catalog event %s: %s", msg.Type, string(msg.Body))
			return nil
		}); consumerErr != nil {
			log.Printf("Failed to start catalog event consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured GORM driver.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}

// seedDatabase creates the default accounts and categories when the store is
// empty, matching a fresh install.
func seedDatabase(userRepo repositories.UserRepository, categoryRepo repositories.CategoryRepository) {
	if _, err := userRepo.GetByUsername("admin"); err != nil {
		seedUsers := []models.User{
			{Username: "admin", Email: "admin@eshop.local", Password: "Admin@123", Role: models.RoleAdmin},
			{Username: "basicuser", Email: "user@eshop.local", Password: "User@123", Role: models.RoleUser},
		}
		for i := range seedUsers {
			hashed, err := bcrypt.GenerateFromPassword([]byte(seedUsers[i].Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Error hashing seed password for %s: %v", seedUsers[i].Username, err)
				continue
			}
			seedUsers[i].Password = string(hashed)
			if err := userRepo.Create(&seedUsers[i]); err != nil {
				log.Printf("Error seeding user %s: %v", seedUsers[i].Username, err)
			} else {
				log.Printf("Seeded user: %s", seedUsers[i].Username)
			}
		}
	}

	categories, err := categoryRepo.GetAll()
	if err != nil || len(categories) > 0 {
		return
	}
	for _, name := range []string{"Electronics", "Clothing", "Books"} {
		category := models.Category{Name: name}
		if err := categoryRepo.Create(&category); err != nil {
			log.Printf("Error seeding category %s: %v", name, err)
		} else {
			log.Printf("Seeded category: %s (ID: %d)", name, category.ID)
		}
	}
}
