package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// WeatherReport is the subset of the current-weather response the dashboard
// card shows.
type WeatherReport struct {
	City        string  `json:"city"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	IconURL     string  `json:"icon_url"`
	Temp        float64 `json:"temp"`
	Humidity    int     `json:"humidity"`
}

// ErrWeatherNotConfigured is returned when no API key is set.
var ErrWeatherNotConfigured = errors.New("weather: no API key configured")

// WeatherClient talks to the OpenWeatherMap current-weather endpoint. The
// key stays server-side; browsers only ever see the local proxy route.
type WeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type owmResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Message string `json:"message"`
}

// Current fetches the weather for a city ("Ibagué,CO"). Upstream errors come
// back with the provider's message so it can be surfaced to the admin.
func (c *WeatherClient) Current(city string) (*WeatherReport, error) {
	if c.apiKey == "" {
		return nil, ErrWeatherNotConfigured
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("lang", "es")

	resp, err := c.client.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("weather: decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if body.Message != "" {
			return nil, fmt.Errorf("weather: %s", body.Message)
		}
		return nil, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	report := &WeatherReport{
		City:     body.Name,
		Temp:     body.Main.Temp,
		Humidity: body.Main.Humidity,
	}
	if len(body.Weather) > 0 {
		report.Description = body.Weather[0].Description
		report.Icon = body.Weather[0].Icon
		report.IconURL = "https://openweathermap.org/img/wn/" + body.Weather[0].Icon + ".png"
	}
	return report, nil
}
