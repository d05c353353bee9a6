package postgres_adapter

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingsTable - таблица объявлений.
const ListingsTable = "real_estate"

// price читаем как текст, чтобы NUMERIC не проходил через float64
const selectListingColumns = `id, house_size, house_location, bedrooms, bathrooms, price::text, date_added`

type PostgresListingAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresListingAdapter(pool *pgxpool.Pool) (*PostgresListingAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresListingAdapter{pool: pool}, nil
}

// FindAll возвращает все объявления без фильтров.
func (a *PostgresListingAdapter) FindAll(ctx context.Context) ([]domain.Listing, error) {
	return a.FindByPredicate(ctx, domain.Predicate{})
}

// FindByPredicate возвращает объявления, удовлетворяющие предикату.
// Порядок не гарантируется: ORDER BY намеренно не добавляем.
func (a *PostgresListingAdapter) FindByPredicate(ctx context.Context, predicate domain.Predicate) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresListingAdapter",
		"method":      "FindByPredicate",
		"constraints": len(predicate.Constraints()),
	})

	whereClause, args, err := applyPredicate(predicate)
	if err != nil {
		repoLogger.Error("Failed to translate predicate", err, nil)
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s", selectListingColumns, ListingsTable, whereClause)
	repoLogger.Debug("Executing listing query", port.Fields{"query": query})

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query listings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Failed to iterate listings", err, nil)
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}

	repoLogger.Debug("Listings fetched", port.Fields{"count": len(listings)})
	return listings, nil
}

func scanListing(row pgx.Row) (domain.Listing, error) {
	var (
		l         domain.Listing
		price     *string
		dateAdded *time.Time
	)
	if err := row.Scan(
		&l.ID, &l.HouseSize, &l.HouseLocation, &l.Bedrooms, &l.Bathrooms, &price, &dateAdded,
	); err != nil {
		return domain.Listing{}, fmt.Errorf("failed to scan listing: %w", err)
	}

	if price != nil {
		m, err := domain.ParseMoney(*price)
		if err != nil {
			return domain.Listing{}, fmt.Errorf("listing %d: %w", l.ID, err)
		}
		l.Price = &m
	}
	if dateAdded != nil {
		d := time.Date(dateAdded.Year(), dateAdded.Month(), dateAdded.Day(), 0, 0, 0, 0, time.UTC)
		l.DateAdded = &d
	}
	return l, nil
}

// GetDistinctLocations извлекает уникальные непустые локации.
func (a *PostgresListingAdapter) GetDistinctLocations(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT house_location
		FROM %s
		WHERE house_location IS NOT NULL AND house_location != ''
		ORDER BY house_location
	`, ListingsTable)

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct locations: %w", err)
	}
	defer rows.Close()

	locations := make([]string, 0)
	for rows.Next() {
		var location string
		if err := rows.Scan(&location); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, location)
	}
	return locations, rows.Err()
}

// Ping проверяет доступность базы.
func (a *PostgresListingAdapter) Ping(ctx context.Context) error {
	if err := a.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	return nil
}
