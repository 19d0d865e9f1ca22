package vision

import (
	"context"
	"fmt"
	"log"
	"strings"

	"smartcart/internal/llm"
	"smartcart/internal/search"
)

// Indexer embeds the alternatives inventory and upserts it into the vector
// index. It runs once at startup (or via cmd/indexer); a failed item is
// logged and skipped, never fatal.
type Indexer struct {
	llm   llm.Client
	index search.Index
}

func NewIndexer(client llm.Client, index search.Index) *Indexer {
	return &Indexer{llm: client, index: index}
}

func (ix *Indexer) Run(ctx context.Context, items []Item) error {
	vectors := make([]search.Vector, 0, len(items))

	for _, item := range items {
		text := fmt.Sprintf(
			"Name: %s. Description: %s. Allergens: %s. Availability: %s.",
			item.Name, item.Description, strings.Join(item.Allergens, ", "), item.Availability,
		)

		values, err := ix.llm.EmbedText(ctx, text)
		if err != nil {
			log.Printf("indexer: embedding failed id=%s: %v", item.ID, err)
			continue
		}

		vectors = append(vectors, search.Vector{
			ID:     item.ID,
			Values: values,
			Metadata: map[string]any{
				"name":         item.Name,
				"description":  item.Description,
				"allergens":    item.Allergens,
				"availability": item.Availability,
			},
		})
	}

	if len(vectors) == 0 {
		log.Println("indexer: nothing to upsert")
		return nil
	}

	if err := ix.index.Upsert(ctx, vectors); err != nil {
		return err
	}

	log.Printf("indexer: upserted %d items", len(vectors))
	return nil
}
