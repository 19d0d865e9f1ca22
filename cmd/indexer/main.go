package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"smartcart/internal/llm"
	"smartcart/internal/search"
	"smartcart/internal/vision"
)

// One-shot: embed the alternatives inventory and upsert it into the vector
// index, then exit.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	for _, k := range []string{"GEMINI_API_KEY", "VECTOR_INDEX_URL"} {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	items, err := vision.LoadItems(filepath.Join(dataDir, "items.json"))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("indexer: loaded %d items", len(items))

	llmClient := llm.NewGeminiClient()
	index := search.NewRESTIndex(os.Getenv("VECTOR_INDEX_URL"), os.Getenv("VECTOR_API_KEY"))

	indexer := vision.NewIndexer(llmClient, index)
	if err := indexer.Run(context.Background(), items); err != nil {
		log.Fatal(err)
	}

	log.Println("indexer: done")
}
