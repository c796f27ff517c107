package climate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Placeholder stands in for the weather description when no reading is available.
const Placeholder = "moderate conditions"

var ErrNoKey = errors.New("weather api key not configured")

// Reading is one current-conditions observation.
type Reading struct {
	Temperature float64         `json:"temperature"`
	Humidity    float64         `json:"humidity"`
	RainfallMM  float64         `json:"rainfall_mm"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

// Oracle looks up current weather for a free-text location.
type Oracle interface {
	Current(ctx context.Context, location string) (*Reading, error)
}

type openWeather struct {
	baseURL string
	key     string
	httpc   *http.Client
}

func NewOpenWeather(baseURL, key string) Oracle {
	return &openWeather{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (o *openWeather) Current(ctx context.Context, location string) (*Reading, error) {
	if o.key == "" {
		return nil, ErrNoKey
	}
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", o.key)
	q.Set("units", "metric")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read weather body: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("weather status %d", resp.StatusCode)
	}

	var out struct {
		Main struct {
			Temp     *float64 `json:"temp"`
			Humidity *float64 `json:"humidity"`
		} `json:"main"`
		Rain map[string]float64 `json:"rain"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode weather: %w", err)
	}

	r := &Reading{Temperature: 25, Humidity: 60, Raw: body}
	if out.Main.Temp != nil {
		r.Temperature = *out.Main.Temp
	}
	if out.Main.Humidity != nil {
		r.Humidity = *out.Main.Humidity
	}
	r.RainfallMM = out.Rain["1h"]
	return r, nil
}

// Describe renders a reading for prompt embedding; nil gives Placeholder.
func Describe(r *Reading) string {
	if r == nil {
		return Placeholder
	}
	return fmt.Sprintf("Temperature: %v°C, Humidity: %v%%, Recent rainfall: %vmm", r.Temperature, r.Humidity, r.RainfallMM)
}
