package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const regionalBaseURL = "https://wilayah.id/api"

// RegionalService mem-proxy data wilayah (provinsi/kabupaten/kecamatan)
// dari wilayah.id. Field koordinat dan place id dibuang sebelum
// dikembalikan. Hasilnya dicache di redis 24 jam; redis nil atau error
// berarti langsung ke sumbernya.
type RegionalService struct {
	client *http.Client
	cache  *redis.Client
}

func NewRegionalService(cache *redis.Client) *RegionalService {
	return &RegionalService{
		client: &http.Client{Timeout: 15 * time.Second},
		cache:  cache,
	}
}

func (s *RegionalService) GetProvinces(ctx context.Context) ([]map[string]interface{}, error) {
	return s.lookup(ctx, "provinces.json")
}

func (s *RegionalService) GetRegencies(ctx context.Context, code string) ([]map[string]interface{}, error) {
	return s.lookup(ctx, fmt.Sprintf("regencies/%s.json", code))
}

func (s *RegionalService) GetDistricts(ctx context.Context, code string) ([]map[string]interface{}, error) {
	return s.lookup(ctx, fmt.Sprintf("districts/%s.json", code))
}

func (s *RegionalService) lookup(ctx context.Context, path string) ([]map[string]interface{}, error) {
	cacheKey := "wilayah:" + path

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var items []map[string]interface{}
			if err := json.Unmarshal(cached, &items); err == nil {
				return items, nil
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, regionalBaseURL+"/"+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("regional api returned %d", resp.StatusCode)
	}

	var payload struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	for _, item := range payload.Data {
		delete(item, "coordinates")
		delete(item, "google_place_id")
	}

	if s.cache != nil {
		if raw, err := json.Marshal(payload.Data); err == nil {
			_ = s.cache.Set(ctx, cacheKey, raw, 24*time.Hour).Err()
		}
	}

	return payload.Data, nil
}
