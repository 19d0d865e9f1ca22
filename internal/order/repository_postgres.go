package order

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"smartcart/internal/apperr"
)

// PostgresRepository stores each order as a JSONB document keyed by its ID.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, o Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO orders (order_id, payload) VALUES ($1, $2)`,
		o.OrderID, payload,
	)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT payload FROM orders ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var o Order
		if err := json.Unmarshal(payload, &o); err != nil {
			return nil, apperr.Wrap(apperr.Parse, "stored order is not valid JSON", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
