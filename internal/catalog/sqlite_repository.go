package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/25nandu/Citimart-web-app/internal/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

const productColumns = `id, name, description, price, discount, stock, status,
	category, subcategory, gender, brand, tags, pairs_with, images,
	added_by, vendor_id, created_at`

func (r *Repository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	var product *domain.Product
	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		product = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (r *Repository) GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id IN (%s)`,
		productColumns, strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *Repository) ListBySubcategories(ctx context.Context, subcategories []string, gender string) ([]*domain.Product, error) {
	if len(subcategories) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(subcategories))
	args := make([]interface{}, 0, len(subcategories)+1)
	for i, sub := range subcategories {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, sub)
	}
	args = append(args, gender)

	query := fmt.Sprintf(`SELECT %s FROM products
		WHERE subcategory IN (%s)
		  AND (gender = $%d OR gender = 'Unisex')
		  AND status = 'active'
		  AND stock > 0
		ORDER BY discount DESC`,
		productColumns, strings.Join(placeholders, ", "), len(subcategories)+1)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func collectProducts(rows *sql.Rows) ([]*domain.Product, error) {
	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	p := &domain.Product{}
	var tags, pairsWith, images sql.NullString
	var vendorID sql.NullString

	err := rows.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Discount,
		&p.Stock,
		&p.Status,
		&p.Category,
		&p.Subcategory,
		&p.Gender,
		&p.Brand,
		&tags,
		&pairsWith,
		&images,
		&p.AddedBy,
		&vendorID,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	if err := unmarshalList(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for product %s: %w", p.ID, err)
	}
	if err := unmarshalList(pairsWith, &p.PairsWith); err != nil {
		return nil, fmt.Errorf("failed to decode pairs_with for product %s: %w", p.ID, err)
	}
	if err := unmarshalList(images, &p.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images for product %s: %w", p.ID, err)
	}
	p.VendorID = vendorID.String

	return p, nil
}

// List columns are stored as JSON text, the same way the order ledger stores
// its items column.
func unmarshalList(col sql.NullString, dst *[]string) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}
