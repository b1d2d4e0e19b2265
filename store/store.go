package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// ProductRow is a row of the products table.
type ProductRow struct {
	ID          int64
	Name        string
	Description sql.NullString
	Price       float64
	Stock       int
}

// PostgresStore is a Store backed by Postgres.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	DB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := DB.Ping(); err != nil {
		DB.Close()
		return nil, err
	}
	return &PostgresStore{DB: DB}, nil
}

func (s *PostgresStore) Close() error { return s.DB.Close() }

// Migrate runs the given schema script.
func (s *PostgresStore) Migrate(schema string) error {
	_, err := s.DB.Exec(schema)
	return err
}

// CreateProduct inserts a product and returns its id
func (s *PostgresStore) CreateProduct(name, desc string, price float64, stock int) (int64, error) {
	var id int64
	err := s.DB.QueryRow(
		`INSERT INTO products (name, description, price, stock) VALUES ($1, $2, $3, $4) RETURNING id`,
		name, desc, price, stock,
	).Scan(&id)
	return id, err
}

// GetProduct returns a single product. A missing product yields an error
// wrapping sql.ErrNoRows.
func (s *PostgresStore) GetProduct(productID int64) (ProductRow, error) {
	var p ProductRow
	err := s.DB.QueryRow(
		`SELECT id, name, description, price, stock FROM products WHERE id=$1`, productID,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductRow{}, fmt.Errorf("product %d: %w", productID, err)
	}
	return p, err
}

func (s *PostgresStore) ListProducts() ([]ProductRow, error) {
	rows, err := s.DB.Query(`SELECT id, name, description, price, stock FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ProductRow{}
	for rows.Next() {
		var p ProductRow
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
