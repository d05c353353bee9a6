// Package memory - хранилище объявлений в памяти, заполняемое из YAML-файла.
// Используется для локального запуска без базы и в тестах.
package memory

import (
	"context"
	"fmt"
	"listing-service/internal/core/domain"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ListingStore неизменяем после создания, поэтому безопасен для конкурентного чтения.
type ListingStore struct {
	listings []domain.Listing
}

// NewListingStore копирует переданные объявления. ID должны быть уникальны.
func NewListingStore(listings []domain.Listing) (*ListingStore, error) {
	seen := make(map[int64]struct{}, len(listings))
	for _, l := range listings {
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("duplicate listing id %d", l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	return &ListingStore{listings: append([]domain.Listing(nil), listings...)}, nil
}

type seedRecord struct {
	ID            int64   `yaml:"id"`
	HouseSize     *int    `yaml:"house_size"`
	HouseLocation *string `yaml:"house_location"`
	Bedrooms      *int    `yaml:"bedrooms"`
	Bathrooms     *int    `yaml:"bathrooms"`
	Price         *string `yaml:"price"`
	DateAdded     *string `yaml:"date_added"`
}

// LoadSeedFile читает объявления из YAML.
// Записи без id получают следующий свободный номер, как при вставке в таблицу.
func LoadSeedFile(path string) (*ListingStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*ListingStore, error) {
	var records []seedRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid seed yaml: %w", err)
	}

	var maxID int64
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	listings := make([]domain.Listing, 0, len(records))
	for i, r := range records {
		l := domain.Listing{
			ID:            r.ID,
			HouseSize:     r.HouseSize,
			HouseLocation: r.HouseLocation,
			Bedrooms:      r.Bedrooms,
			Bathrooms:     r.Bathrooms,
		}
		if l.ID == 0 {
			maxID++
			l.ID = maxID
		}
		if r.Price != nil {
			m, err := domain.ParseMoney(*r.Price)
			if err != nil {
				return nil, fmt.Errorf("seed record %d: %w", i, err)
			}
			l.Price = &m
		}
		if r.DateAdded != nil {
			d, err := time.Parse(domain.DateLayout, *r.DateAdded)
			if err != nil {
				return nil, fmt.Errorf("seed record %d: invalid date_added: %w", i, err)
			}
			l.DateAdded = &d
		}
		listings = append(listings, l)
	}

	return NewListingStore(listings)
}

// FindAll возвращает все объявления в порядке загрузки.
func (s *ListingStore) FindAll(ctx context.Context) ([]domain.Listing, error) {
	return s.FindByPredicate(ctx, domain.Predicate{})
}

func (s *ListingStore) FindByPredicate(ctx context.Context, predicate domain.Predicate) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]domain.Listing, 0)
	for _, l := range s.listings {
		if predicate.Matches(l) {
			result = append(result, l)
		}
	}
	return result, nil
}

// GetDistinctLocations - уникальные локации в порядке первого появления.
func (s *ListingStore) GetDistinctLocations(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	locations := make([]string, 0)
	for _, l := range s.listings {
		if l.HouseLocation == nil || *l.HouseLocation == "" {
			continue
		}
		if _, ok := seen[*l.HouseLocation]; ok {
			continue
		}
		seen[*l.HouseLocation] = struct{}{}
		locations = append(locations, *l.HouseLocation)
	}
	return locations, nil
}

func (s *ListingStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
