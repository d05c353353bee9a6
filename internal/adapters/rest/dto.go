package rest

import (
	"fmt"
	"listing-service/internal/core/domain"
	"time"
)

// ListingResponse - объявление в формате обмена.
// Отсутствующие значения сериализуются как null.
type ListingResponse struct {
	ID            int64   `json:"id"`
	HouseSize     *int    `json:"house_size"`
	HouseLocation *string `json:"house_location"`
	Bedrooms      *int    `json:"bedrooms"`
	Bathrooms     *int    `json:"bathrooms"`
	Price         *string `json:"price"`      // десятичная строка, "150000.00"
	DateAdded     *string `json:"date_added"` // YYYY-MM-DD
}

// EncodeListing переводит объявление в ответ API.
func EncodeListing(l domain.Listing) ListingResponse {
	resp := ListingResponse{
		ID:            l.ID,
		HouseSize:     l.HouseSize,
		HouseLocation: l.HouseLocation,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
	}
	if l.Price != nil {
		price := l.Price.String()
		resp.Price = &price
	}
	if l.DateAdded != nil {
		date := l.DateAdded.Format(domain.DateLayout)
		resp.DateAdded = &date
	}
	return resp
}

// EncodeListings сохраняет порядок и никогда не возвращает nil (пустой ответ - "[]").
func EncodeListings(listings []domain.Listing) []ListingResponse {
	resp := make([]ListingResponse, len(listings))
	for i, l := range listings {
		resp[i] = EncodeListing(l)
	}
	return resp
}

// DecodeListing - обратное преобразование, для клиентов и тестов.
func DecodeListing(resp ListingResponse) (domain.Listing, error) {
	l := domain.Listing{
		ID:            resp.ID,
		HouseSize:     resp.HouseSize,
		HouseLocation: resp.HouseLocation,
		Bedrooms:      resp.Bedrooms,
		Bathrooms:     resp.Bathrooms,
	}
	if resp.Price != nil {
		m, err := domain.ParseMoney(*resp.Price)
		if err != nil {
			return domain.Listing{}, fmt.Errorf("listing %d: %w", resp.ID, err)
		}
		l.Price = &m
	}
	if resp.DateAdded != nil {
		d, err := time.Parse(domain.DateLayout, *resp.DateAdded)
		if err != nil {
			return domain.Listing{}, fmt.Errorf("listing %d: invalid date_added: %w", resp.ID, err)
		}
		l.DateAdded = &d
	}
	return l, nil
}
