package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/config"
	"biblioteca/internal/handlers"
	"biblioteca/internal/middleware"
	"biblioteca/internal/models"
	"biblioteca/internal/repositories"
	"biblioteca/internal/services"
	"biblioteca/pkg/rabbitmq"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Author{}, &models.Book{}, &models.User{}, &models.Reservation{}); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	// --- RabbitMQ ---
	// The API stays usable without a broker; reservation events are then
	// simply not published.
	var mqClient *rabbitmq.Client
	mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		logrus.Warnf("RabbitMQ unavailable, reservation events disabled: %v", err)
		mqClient = nil
	} else {
		defer mqClient.Close()
	}

	// --- Repositories ---
	authorRepo := repositories.NewGORMAuthorRepository(db)
	bookRepo := repositories.NewGORMBookRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	reservationRepo := repositories.NewGORMReservationRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	authorService := services.NewAuthorService(authorRepo)
	bookService := services.NewBookService(bookRepo, authorRepo)
	userService := services.NewUserService(userRepo)
	reservationService := services.NewReservationService(reservationRepo, bookRepo, userRepo, mqClient)

	seedAdmin(userRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	authorHandler := handlers.NewAuthorHandler(authorService)
	bookHandler := handlers.NewBookHandler(bookService)
	userHandler := handlers.NewUserHandler(userService)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.FiberErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- API routes ---
	// The public auth routes go first: fiber matches in registration order,
	// and the auth guard mounted below covers everything registered after it.
	public := app.Group("/biblioteca")
	authHandler.RegisterPublicRoutes(public)

	protected := public.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	authorHandler.RegisterRoutes(protected)
	bookHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)
	reservationHandler.RegisterRoutes(protected)

	// --- Reservation event consumer ---
	if mqClient != nil {
		if consumerErr := mqClient.ConsumeReservationEvents(func(msg amqp.Delivery) error {
			logrus.WithField("tag", msg.DeliveryTag).Infof("reservation event: %s", string(msg.Body))
			return nil
		}); consumerErr != nil {
			logrus.Warnf("failed to start reservation event consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("starting server on %s", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			logrus.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	logrus.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Errorf("error during shutdown: %v", err)
	}
	logrus.Info("server gracefully stopped")
}

// seedAdmin creates the bootstrap administrator account on first start.
// Without it no admin-gated route would ever be reachable. The account uses
// the seeded default password and must change it through auth/changePassword.
func seedAdmin(repo repositories.UserRepository) {
	const adminEmail = "admin@biblioteca.mx"

	if _, err := repo.GetByEmail(adminEmail); err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(models.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Errorf("failed to hash admin seed password: %v", err)
		return
	}

	admin := &models.User{
		FirstName: "Admin",
		LastName:  "Biblioteca",
		Email:     adminEmail,
		Role:      models.RoleAdmin,
		Active:    true,
		CreatedAt: time.Now(),
		Nickname:  "admin",
		Password:  string(hashed),
	}
	if err := repo.Create(admin); err != nil {
		logrus.Errorf("failed to seed admin user: %v", err)
		return
	}
	logrus.WithField("email", adminEmail).Info("seeded bootstrap administrator")
}
