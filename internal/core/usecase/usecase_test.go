package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/memory"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func moneyPtr(s string) *domain.Money {
	m := domain.MustParseMoney(s)
	return &m
}

func listing(id int64, size int, location string, bedrooms int, price string) domain.Listing {
	d := time.Date(2023, 5, int(id), 0, 0, 0, 0, time.UTC)
	return domain.Listing{
		ID:            id,
		HouseSize:     intPtr(size),
		HouseLocation: strPtr(location),
		Bedrooms:      intPtr(bedrooms),
		Bathrooms:     intPtr(1),
		Price:         moneyPtr(price),
		DateAdded:     &d,
	}
}

func newStore(t *testing.T) *memory.ListingStore {
	t.Helper()
	store, err := memory.NewListingStore([]domain.Listing{
		listing(1, 800, "Springfield", 2, "150000"),
		listing(2, 1200, "Shelbyville", 3, "210000.5"),
		listing(3, 1500, "Springfield", 3, "320000.99"),
		listing(4, 2000, "Capital City", 4, "450000"),
		{ID: 5},
	})
	require.NoError(t, err)
	return store
}

func ids(listings []domain.Listing) []int64 {
	out := make([]int64, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

type failingStore struct{ err error }

func (f failingStore) FindAll(context.Context) ([]domain.Listing, error) { return nil, f.err }
func (f failingStore) FindByPredicate(context.Context, domain.Predicate) ([]domain.Listing, error) {
	return nil, f.err
}
func (f failingStore) GetDistinctLocations(context.Context) ([]string, error) { return nil, f.err }
func (f failingStore) Ping(context.Context) error                            { return f.err }

func TestSearchListings_NoCriteriaReturnsEverything(t *testing.T) {
	uc := NewSearchListingsUseCase(newStore(t))

	got, err := uc.Execute(context.Background(), domain.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(got))
}

func TestSearchListings_MinArea(t *testing.T) {
	store, err := memory.NewListingStore([]domain.Listing{
		listing(1, 800, "A", 1, "100000"),
		listing(2, 1200, "A", 2, "200000.10"),
		listing(3, 1500, "B", 3, "300000"),
	})
	require.NoError(t, err)

	got, err := NewSearchListingsUseCase(store).Execute(context.Background(), domain.Criteria{MinArea: intPtr(1000)})
	require.NoError(t, err)
	require.Equal(t, []int64{2, 3}, ids(got))
	assert.Equal(t, "200000.10", got[0].Price.String())
	assert.Equal(t, "300000.00", got[1].Price.String())
}

func TestSearchListings_MinGreaterThanMaxIsEmpty(t *testing.T) {
	uc := NewSearchListingsUseCase(newStore(t))

	got, err := uc.Execute(context.Background(), domain.Criteria{MinArea: intPtr(1600), MaxArea: intPtr(900)})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchListings_AreaRangeKeepsBothBounds(t *testing.T) {
	uc := NewSearchListingsUseCase(newStore(t))

	got, err := uc.Execute(context.Background(), domain.Criteria{MinArea: intPtr(1000), MaxArea: intPtr(1600)})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestSearchListings_ExactBedrooms(t *testing.T) {
	uc := NewSearchListingsUseCase(newStore(t))

	for _, n := range []int{2, 3, 4, 7} {
		got, err := uc.Execute(context.Background(), domain.Criteria{MinBedrooms: intPtr(n), MaxBedrooms: intPtr(n)})
		require.NoError(t, err)
		for _, l := range got {
			assert.Equal(t, n, *l.Bedrooms)
		}
	}
}

func TestSearchListings_LocationsIsUnionOfSingleQueries(t *testing.T) {
	uc := NewSearchListingsUseCase(newStore(t))
	ctx := context.Background()

	both, err := uc.Execute(ctx, domain.Criteria{Locations: []string{"Springfield", "Shelbyville"}})
	require.NoError(t, err)

	springfield, err := uc.Execute(ctx, domain.Criteria{Locations: []string{"Springfield"}})
	require.NoError(t, err)
	shelbyville, err := uc.Execute(ctx, domain.Criteria{Locations: []string{"Shelbyville"}})
	require.NoError(t, err)

	assert.ElementsMatch(t, append(ids(springfield), ids(shelbyville)...), ids(both))
	assert.Equal(t, []int64{1, 2, 3}, ids(both))
}

// recordingStore запоминает, каким методом пришли в хранилище.
type recordingStore struct {
	*memory.ListingStore
	calls []string
}

func (r *recordingStore) FindAll(ctx context.Context) ([]domain.Listing, error) {
	r.calls = append(r.calls, "FindAll")
	return r.ListingStore.FindAll(ctx)
}

func (r *recordingStore) FindByPredicate(ctx context.Context, p domain.Predicate) ([]domain.Listing, error) {
	r.calls = append(r.calls, "FindByPredicate")
	return r.ListingStore.FindByPredicate(ctx, p)
}

func TestSearchListings_EmptyCriteriaUsesFindAll(t *testing.T) {
	store := &recordingStore{ListingStore: newStore(t)}
	uc := NewSearchListingsUseCase(store)
	ctx := context.Background()

	all, err := uc.Execute(ctx, domain.Criteria{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = uc.Execute(ctx, domain.Criteria{MinArea: intPtr(1000)})
	require.NoError(t, err)

	assert.Equal(t, []string{"FindAll", "FindByPredicate"}, store.calls)
}

func TestSearchListings_LogsBoundsNotPointers(t *testing.T) {
	var buf bytes.Buffer
	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: &buf})
	ctx := contextkeys.ContextWithLogger(context.Background(), logger)

	_, err := NewSearchListingsUseCase(newStore(t)).Execute(ctx, domain.Criteria{MinArea: intPtr(1000), MaxBedrooms: intPtr(3)})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "house_size >= 1000")
	assert.Contains(t, buf.String(), "bedrooms <= 3")
	assert.NotContains(t, buf.String(), "0xc")
}

func TestSearchListings_StoreFailure(t *testing.T) {
	boom := errors.New("connection refused")
	uc := NewSearchListingsUseCase(failingStore{err: boom})

	got, err := uc.Execute(context.Background(), domain.Criteria{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestGetLocations(t *testing.T) {
	got, err := NewGetLocationsUseCase(newStore(t)).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Springfield", "Shelbyville", "Capital City"}, got)

	_, err = NewGetLocationsUseCase(failingStore{err: errors.New("down")}).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestSelectLocations(t *testing.T) {
	store, err := memory.NewListingStore([]domain.Listing{
		listing(1, 800, "Springfield", 2, "1"),
		listing(2, 900, "Shelbyville", 2, "1"),
	})
	require.NoError(t, err)
	uc := NewSelectLocationsUseCase(store)
	ctx := context.Background()

	got, err := uc.Execute(ctx, map[string]string{"Springfield": "on"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Springfield"}, got)

	got, err = uc.Execute(ctx, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	got, err = uc.Execute(ctx, map[string]string{"Nowhere": "on"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestSelectLocations_StoreFailure(t *testing.T) {
	_, err := NewSelectLocationsUseCase(failingStore{err: errors.New("down")}).
		Execute(context.Background(), map[string]string{"Springfield": "on"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestHealthCheck(t *testing.T) {
	assert.NoError(t, NewHealthCheckUseCase(newStore(t)).Execute(context.Background()))
	assert.ErrorIs(t, NewHealthCheckUseCase(failingStore{err: errors.New("down")}).Execute(context.Background()), domain.ErrStoreUnavailable)
}
