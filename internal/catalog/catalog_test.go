package catalog

import (
	"bytes"
	"testing"

	"movie-rental-billing/internal/config"
	"movie-rental-billing/internal/domain"
	"movie-rental-billing/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("Default scenario", func(t *testing.T) {
		customers, err := Build(config.Default().Catalog)
		require.NoError(t, err)
		require.Len(t, customers, 1)

		customer := customers[0]
		assert.Equal(t, 1, customer.ID)
		assert.Equal(t, "Ahmad Atef", customer.Name)
		require.Len(t, customer.Rentals, 3)

		rental := customer.Rentals[0]
		assert.Same(t, rental, customer.Rentals[1])
		assert.Same(t, rental, customer.Rentals[2])
		assert.Equal(t, 3, rental.NumDays)
		assert.Equal(t, domain.PricingModeDefault, rental.Mode)
		assert.Equal(t, domain.Movie{ID: 1, Title: "Titanic", Price: 14.99, Type: domain.MovieTypeNewRelease}, rental.Movie)
	})

	t.Run("Keeps customer and rental order", func(t *testing.T) {
		cfg := config.CatalogConfig{
			Movies: []config.MovieConfig{
				{ID: 1, Title: "Heat", Price: 3, Type: "REGULAR"},
				{ID: 2, Title: "Up", Price: 2, Type: "CHILDRENS"},
			},
			Customers: []config.CustomerConfig{
				{ID: 7, Name: "First", Rentals: []config.RentalConfig{
					{MovieID: 2, Days: 1, Mode: "SURGED"},
					{MovieID: 1, Days: 4, Mode: "BLACK_FRIDAY", Copies: 2},
				}},
				{ID: 3, Name: "Second"},
			},
		}

		customers, err := Build(cfg)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "First", customers[0].Name)
		assert.Equal(t, "Second", customers[1].Name)
		assert.Empty(t, customers[1].Rentals)

		rentals := customers[0].Rentals
		require.Len(t, rentals, 3)
		assert.Equal(t, "Up", rentals[0].Movie.Title)
		assert.IsType(t, domain.SurgedStrategy{}, rentals[0].Strategy())
		assert.Same(t, rentals[1], rentals[2])
		assert.IsType(t, domain.DefaultStrategy{}, rentals[1].Strategy())
		assert.Equal(t, 12.0, rentals[1].Cost())
	})

	t.Run("Unknown movie", func(t *testing.T) {
		cfg := config.CatalogConfig{
			Customers: []config.CustomerConfig{
				{ID: 1, Name: "Lost", Rentals: []config.RentalConfig{{MovieID: 9, Days: 1}}},
			},
		}

		_, err := Build(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown movie 9")
	})

	t.Run("Duplicate movie id", func(t *testing.T) {
		cfg := config.CatalogConfig{
			Movies: []config.MovieConfig{
				{ID: 1, Title: "Heat", Price: 3, Type: "REGULAR"},
				{ID: 1, Title: "Up", Price: 2, Type: "CHILDRENS"},
			},
		}

		_, err := Build(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate movie id: 1")
	})

	t.Run("Negative copies", func(t *testing.T) {
		cfg := config.Default().Catalog
		cfg.Customers[0].Rentals[0].Copies = -2

		customers, err := Build(cfg)
		assert.Error(t, err)
		assert.Nil(t, customers)
		assert.Contains(t, err.Error(), "invalid copies: -2")
	})
}

func TestBuild_WarnsOnModeFallback(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeWithWriter(&buf, "warn", "text")
	t.Cleanup(func() { logger.Initialize("info", "text") })

	cfg := config.Default().Catalog
	cfg.Customers[0].Rentals = append(cfg.Customers[0].Rentals,
		config.RentalConfig{MovieID: 1, Days: 1, Mode: "SURGED"})

	_, err := Build(cfg)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "has no strategy")

	cfg.Customers[0].Rentals[1].Mode = "BLACK_FRIDAY"
	_, err = Build(cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Pricing mode has no strategy, using DEFAULT")
	assert.Contains(t, buf.String(), "mode=BLACK_FRIDAY")
}
