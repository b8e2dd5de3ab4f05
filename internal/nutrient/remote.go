package nutrient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const fdcBaseURL = "https://api.nal.usda.gov/fdc/v1/foods/search"

// fdcNutrientFields maps USDA FoodData Central nutrient IDs to the record
// fields they populate.
var fdcNutrientFields = map[int]func(*Record, float64){
	1008: func(r *Record, v float64) { r.Calories = v },
	1003: func(r *Record, v float64) { r.ProteinG = v },
	1005: func(r *Record, v float64) { r.CarbsG = v },
	1004: func(r *Record, v float64) { r.FatG = v },
	1093: func(r *Record, v float64) { r.SodiumMg = v },
	1079: func(r *Record, v float64) { r.FiberG = v },
}

type fdcFood struct {
	Description   string  `json:"description"`
	ServingSize   float64 `json:"servingSize"`
	FoodNutrients []struct {
		NutrientID int     `json:"nutrientId"`
		Value      float64 `json:"value"`
	} `json:"foodNutrients"`
}

type fdcSearchResponse struct {
	Foods []fdcFood `json:"foods"`
}

// RemoteSource queries the USDA FoodData Central API. Without an API key it
// is a no-op source. Requests carry a short client timeout and an optional
// client-side rate limit so a slow or throttled upstream never stalls the
// embedded catalogs it runs alongside.
type RemoteSource struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewRemoteSource builds a USDA source. timeout bounds each request; rps
// enables client-side rate limiting when positive.
func NewRemoteSource(apiKey string, timeout time.Duration, rps float64) *RemoteSource {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	return &RemoteSource{
		apiKey:  apiKey,
		baseURL: fdcBaseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// Name implements Source.
func (s *RemoteSource) Name() string { return "usda" }

// Search implements Source. Network failures, timeouts, non-200 responses
// and malformed payloads all degrade to an empty result.
func (s *RemoteSource) Search(ctx context.Context, term string, limit int) []Record {
	if s.apiKey == "" {
		return nil
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil
		}
	}

	query := url.Values{}
	query.Set("api_key", s.apiKey)
	query.Set("query", term)
	if limit <= 0 {
		limit = 20
	}
	query.Set("pageSize", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload fdcSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}

	var results []Record
	for _, food := range payload.Foods {
		if food.Description == "" {
			continue
		}

		record := Record{
			Description:  food.Description,
			Source:       "USDA-API",
			ServingGrams: defaultServingGrams,
		}
		if food.ServingSize > 0 {
			record.ServingGrams = food.ServingSize
		}
		for _, n := range food.FoodNutrients {
			if set, ok := fdcNutrientFields[n.NutrientID]; ok {
				set(&record, n.Value)
			}
		}
		if record.Calories == 0 {
			continue
		}

		results = append(results, record)
	}

	return results
}
