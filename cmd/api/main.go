package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"smartcart/internal/cart"
	"smartcart/internal/catalog"
	"smartcart/internal/db"
	"smartcart/internal/llm"
	"smartcart/internal/match"
	"smartcart/internal/meal"
	"smartcart/internal/order"
	"smartcart/internal/profile"
	"smartcart/internal/search"
	"smartcart/internal/storage"
	"smartcart/internal/store"
	"smartcart/internal/vision"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	profilePath := os.Getenv("PROFILE_PATH")
	if profilePath == "" {
		profilePath = "profile_001.json"
	}
	ordersPath := os.Getenv("ORDERS_PATH")
	if ordersPath == "" {
		ordersPath = "orders.json"
	}

	// ───────────────────────── STATIC DATA ─────────────────────────
	scorer := match.NewScorer(match.DefaultThreshold)

	catalogRepo, err := catalog.NewFileRepository(filepath.Join(dataDir, "products.json"))
	if err != nil {
		log.Fatal("catalog load failed: ", err)
	}
	index := catalog.NewIndex(catalogRepo, scorer)

	storeRepo, err := store.NewFileRepository(filepath.Join(dataDir, "stores.json"))
	if err != nil {
		log.Fatal("store data load failed: ", err)
	}

	synonyms, err := cart.LoadSynonymTable(filepath.Join(dataDir, "allergens.json"))
	if err != nil {
		log.Fatal("synonym table load failed: ", err)
	}

	substitutions, err := cart.LoadSubstitutionTable(filepath.Join(dataDir, "substitutions.json"))
	if err != nil {
		log.Fatal("substitution table load failed: ", err)
	}

	// ───────────────────────── EXTERNAL CLIENTS ─────────────────────────
	llmClient := llm.NewGeminiClient()

	var vectorIndex search.Index
	if url := os.Getenv("VECTOR_INDEX_URL"); url != "" {
		vectorIndex = search.NewRESTIndex(url, os.Getenv("VECTOR_API_KEY"))
	}

	var uploader storage.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed: ", err)
		}
		uploader = r2
	}

	// ───────────────────────── REPOS ─────────────────────────
	profileRepo := profile.NewFileRepository(profilePath)

	var orderRepo order.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pool := db.ConnectPostgres()
		defer pool.Close()
		orderRepo = order.NewPostgresRepository(pool)
	} else {
		orderRepo = order.NewFileRepository(ordersPath)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	profileService := profile.NewService(llmClient, profileRepo)

	classifier := cart.NewClassifier(index, synonyms, substitutions, scorer)
	cartService := cart.NewService(classifier, index)

	selector := store.NewSelector(storeRepo)
	storeService := store.NewService(index, selector)

	orderService := order.NewService(orderRepo)
	mealService := meal.NewService(llmClient, index)
	visionService := vision.NewService(llmClient, vectorIndex, uploader)

	// ───────────────────────── HANDLERS ─────────────────────────
	profileHandler := profile.NewHandler(profileService)
	cartHandler := cart.NewHandler(cartService, profileRepo)
	storeHandler := store.NewHandler(storeService)
	orderHandler := order.NewHandler(orderService)
	mealHandler := meal.NewHandler(mealService)
	visionHandler := vision.NewHandler(visionService)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/profile", profileHandler.Create)
	r.GET("/profile", profileHandler.Get)
	r.DELETE("/profile", profileHandler.Delete)

	r.POST("/process-cart", cartHandler.ProcessCart)
	r.POST("/scan-qr", cartHandler.ScanSKU)
	r.POST("/scan-qr/image", cartHandler.ScanImage)

	r.POST("/pickup-suggestion", storeHandler.PickupSuggestion)
	r.GET("/pickup-code/:code/qr", storeHandler.PickupCodeQR)

	r.POST("/place-order", orderHandler.Place)
	r.GET("/orders", orderHandler.List)

	r.POST("/generate-meal", mealHandler.Generate)

	r.POST("/detect-allergens", visionHandler.Detect)
	r.GET("/detect-allergens/latest", visionHandler.Latest)

	// ───────────────────────── VECTOR INDEXER ─────────────────────────
	if vectorIndex != nil {
		go func() {
			items, err := vision.LoadItems(filepath.Join(dataDir, "items.json"))
			if err != nil {
				log.Printf("indexer: %v", err)
				return
			}
			indexer := vision.NewIndexer(llmClient, vectorIndex)
			if err := indexer.Run(context.Background(), items); err != nil {
				log.Printf("indexer: %v", err)
			}
		}()
	}

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
