package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// FoodService wraps the Open Food Facts API for text search and barcode
// lookup. A product missing from the catalog is not an error; LookupBarcode
// reports found=false and callers surface it as informational.
type FoodService struct {
	baseURL string
	client  *http.Client
}

func NewFoodService() *FoodService {
	return &FoodService{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewFoodServiceWithBase is used by tests to point at a stub server.
func NewFoodServiceWithBase(baseURL string) *FoodService {
	return &FoodService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type FoodResult struct {
	Name     string  `json:"name"`
	Barcode  string  `json:"barcode,omitempty"`
	Calories float64 `json:"calories"` // per serving
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type offNutriments struct {
	EnergyKcal100g float64 `json:"energy-kcal_100g"`
	Proteins100g   float64 `json:"proteins_100g"`
	Carbs100g      float64 `json:"carbohydrates_100g"`
	Fat100g        float64 `json:"fat_100g"`
}

type offProduct struct {
	Code            string        `json:"code"`
	ProductName     string        `json:"product_name"`
	ServingQuantity float64       `json:"serving_quantity"`
	Nutriments      offNutriments `json:"nutriments"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

type offProductResponse struct {
	Status  int        `json:"status"` // 1 found, 0 not found
	Product offProduct `json:"product"`
}

func (s *FoodService) Search(query string) ([]FoodResult, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=20",
		s.baseURL, url.QueryEscape(query),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call food search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse food search JSON: %w", err)
	}

	results := make([]FoodResult, 0, len(sr.Products))
	for _, p := range sr.Products {
		if p.ProductName == "" {
			continue
		}
		results = append(results, toFoodResult(p))
	}
	return results, nil
}

func (s *FoodService) LookupBarcode(code string) (*FoodResult, bool, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, url.PathEscape(code))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, false, fmt.Errorf("failed to call product lookup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read product lookup response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("product lookup API error %d: %s", resp.StatusCode, string(body))
	}

	var pr offProductResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, false, fmt.Errorf("failed to parse product lookup JSON: %w", err)
	}
	if pr.Status != 1 || pr.Product.ProductName == "" {
		return nil, false, nil
	}

	r := toFoodResult(pr.Product)
	if r.Barcode == "" {
		r.Barcode = code
	}
	return &r, true, nil
}

// toFoodResult converts per-100g values to per-serving when the product
// declares a serving size, otherwise keeps the 100g basis.
func toFoodResult(p offProduct) FoodResult {
	factor := 1.0
	qty := 100.0
	if p.ServingQuantity > 0 {
		factor = p.ServingQuantity / 100.0
		qty = p.ServingQuantity
	}
	return FoodResult{
		Name:     p.ProductName,
		Barcode:  p.Code,
		Calories: round2(p.Nutriments.EnergyKcal100g * factor),
		Protein:  round2(p.Nutriments.Proteins100g * factor),
		Carbs:    round2(p.Nutriments.Carbs100g * factor),
		Fat:      round2(p.Nutriments.Fat100g * factor),
		Quantity: qty,
		Unit:     "g",
	}
}
