package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/25nandu/Citimart-web-app/internal/cache"
	"github.com/25nandu/Citimart-web-app/internal/cart"
	"github.com/25nandu/Citimart-web-app/internal/catalog"
	h "github.com/25nandu/Citimart-web-app/internal/http"
	"github.com/25nandu/Citimart-web-app/internal/offer"
	"github.com/25nandu/Citimart-web-app/internal/order"
	"github.com/25nandu/Citimart-web-app/internal/poller"
	"github.com/25nandu/Citimart-web-app/internal/pricing"
	"github.com/25nandu/Citimart-web-app/internal/publisher"
	"github.com/25nandu/Citimart-web-app/internal/recommend"
	"github.com/25nandu/Citimart-web-app/internal/wishlist"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	CatalogDBPath   string
	KafkaBrokers    string
	Postgres        order.Credentials
	SweepInterval   time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGO_DB_NAME", "citimart"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CatalogDBPath: getEnv("CATALOG_DB_PATH", "./catalog.db"),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
		Postgres: order.Credentials{
			Host:              getEnv("POSTGRES_HOST", "localhost"),
			Port:              getEnvInt("POSTGRES_PORT", 5432),
			User:              getEnv("POSTGRES_USER", "postgres"),
			Password:          getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:            getEnv("POSTGRES_DB", "orders"),
			MigrationsDirPath: getEnv("ORDERS_MIGRATIONS_PATH", "migrations/orders"),
		},
		SweepInterval:   time.Minute,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// MongoDB holds carts, wishlists and offers.
	mongoDB, err := cart.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Client().Disconnect(context.Background())
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	cartRepo := cart.NewMongoRepository(mongoDB)
	if err := cartRepo.CreateIndexes(ctx); err != nil {
		log.Fatalf("Failed to create cart indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	cartCache := cache.NewRedisCache(redisClient)
	cartService := cart.NewService(cartRepo, cartCache)

	catalogRepo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer catalogRepo.Close()
	if err := catalogRepo.RunMigrations(getEnv("CATALOG_MIGRATIONS_PATH", "migrations/catalog")); err != nil {
		log.Fatalf("Failed to run catalog migrations: %v", err)
	}
	catalogSrc := catalog.NewBreakerSource(catalogRepo)

	ledger, err := order.NewRepository(&cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer ledger.Close()
	if err := ledger.RunMigrations(&cfg.Postgres); err != nil {
		log.Fatalf("Failed to run order migrations: %v", err)
	}
	log.Printf("Connected to Postgres at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)

	offerRepo := offer.NewMongoRepository(mongoDB)
	wishlistSvc := wishlist.NewService(wishlist.NewMongoRepository(mongoDB), cartService)

	engine := pricing.NewEngine(cartService, catalogSrc, offerRepo, ledger)
	recommender := recommend.NewEngine(catalogSrc)

	// Background workers: offer status sweep, outbox publisher and the
	// cart-clear consumer that recovers missed synchronous clears.
	sweeper := offer.NewSweeper(offerRepo, cfg.SweepInterval)
	go sweeper.Run(ctx)

	outbox := publisher.NewOutboxPoller(ledger, cfg.KafkaBrokers)
	go outbox.Run(ctx)

	clearConsumer := poller.NewPoller(cartRepo, cartCache, cfg.KafkaBrokers)
	defer clearConsumer.Close()
	go clearConsumer.Run(ctx)

	cartHandler := h.NewCartHandler(cartService, catalogSrc, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(engine, cfg.RequestTimeout)
	ordersHandler := h.NewOrdersHandler(ledger, cfg.RequestTimeout)
	offersHandler := h.NewOffersHandler(offerRepo, cfg.RequestTimeout)
	recommendHandler := h.NewRecommendHandler(recommender, cfg.RequestTimeout)
	wishlistHandler := h.NewWishlistHandler(wishlistSvc, cfg.RequestTimeout)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.CustomerIDMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Post("/checkout", checkoutHandler.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordersHandler.ListOrders)
			r.Get("/{order_id}", ordersHandler.GetOrder)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Get("/", offersHandler.ListActive)
			r.Post("/", offersHandler.Create)
			r.Put("/{offer_id}", offersHandler.Update)
			r.Delete("/{offer_id}", offersHandler.Delete)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistHandler.GetWishlist)
			r.Post("/items", wishlistHandler.AddItem)
			r.Delete("/items", wishlistHandler.RemoveItem)
			r.Post("/move-to-cart", wishlistHandler.MoveToCart)
		})

		r.Post("/recommendations/bought-together", recommendHandler.BoughtTogether)
		r.Get("/products/{product_id}/suggestions", recommendHandler.ProductSuggestions)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Checkout service starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
