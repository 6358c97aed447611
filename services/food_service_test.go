package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodSearchParsesProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "oatmeal", r.URL.Query().Get("search_terms"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{
					"code": "123456789",
					"product_name": "Rolled Oats",
					"serving_quantity": 40,
					"nutriments": {
						"energy-kcal_100g": 380,
						"proteins_100g": 13,
						"carbohydrates_100g": 68,
						"fat_100g": 7
					}
				},
				{"code": "000", "product_name": ""}
			]
		}`))
	}))
	defer srv.Close()

	svc := NewFoodServiceWithBase(srv.URL)
	results, err := svc.Search("oatmeal")
	require.NoError(t, err)
	require.Len(t, results, 1) // nameless product filtered out

	r := results[0]
	assert.Equal(t, "Rolled Oats", r.Name)
	assert.Equal(t, "123456789", r.Barcode)
	// per-serving: 40g serving → 0.4 × per-100g values
	assert.InDelta(t, 152, r.Calories, 0.01)
	assert.InDelta(t, 5.2, r.Protein, 0.01)
	assert.Equal(t, 40.0, r.Quantity)
	assert.Equal(t, "g", r.Unit)
}

func TestFoodSearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewFoodServiceWithBase(srv.URL)
	_, err := svc.Search("oatmeal")
	assert.Error(t, err)
}

func TestBarcodeLookupFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/5901234123457.json", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"code": "5901234123457",
				"product_name": "Greek Yogurt",
				"nutriments": {
					"energy-kcal_100g": 97,
					"proteins_100g": 9,
					"carbohydrates_100g": 4,
					"fat_100g": 5
				}
			}
		}`))
	}))
	defer srv.Close()

	svc := NewFoodServiceWithBase(srv.URL)
	result, found, err := svc.LookupBarcode("5901234123457")
	require.NoError(t, err)
	require.True(t, found)

	// no serving size declared → values stay on the 100g basis
	assert.Equal(t, "Greek Yogurt", result.Name)
	assert.Equal(t, 97.0, result.Calories)
	assert.Equal(t, 100.0, result.Quantity)
}

func TestBarcodeLookupNotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer srv.Close()

	svc := NewFoodServiceWithBase(srv.URL)
	result, found, err := svc.LookupBarcode("0000000000000")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, result)
}

func TestBarcodeLookupHTTP404IsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := NewFoodServiceWithBase(srv.URL)
	_, found, err := svc.LookupBarcode("0000000000000")
	assert.NoError(t, err)
	assert.False(t, found)
}
