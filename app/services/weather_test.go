package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWeatherClientCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Ibagué,CO" {
			t.Errorf("city query = %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("units query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Ibagué",
			"weather": [{"description": "nubes dispersas", "icon": "03d"}],
			"main": {"temp": 24.3, "humidity": 68}
		}`))
	}))
	defer srv.Close()

	c := NewWeatherClient("test-key")
	c.baseURL = srv.URL

	report, err := c.Current("Ibagué,CO")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if report.City != "Ibagué" {
		t.Errorf("city = %q", report.City)
	}
	if report.Description != "nubes dispersas" {
		t.Errorf("description = %q", report.Description)
	}
	if report.Temp != 24.3 || report.Humidity != 68 {
		t.Errorf("temp/humidity = %v/%v", report.Temp, report.Humidity)
	}
	if report.IconURL != "https://openweathermap.org/img/wn/03d.png" {
		t.Errorf("icon url = %q", report.IconURL)
	}
}

func TestWeatherClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer srv.Close()

	c := NewWeatherClient("test-key")
	c.baseURL = srv.URL

	if _, err := c.Current("Nowhere"); err == nil || err.Error() != "weather: city not found" {
		t.Errorf("err = %v, want provider message surfaced", err)
	}
}

func TestWeatherClientWithoutKey(t *testing.T) {
	c := NewWeatherClient("")
	if _, err := c.Current("Ibagué,CO"); !errors.Is(err, ErrWeatherNotConfigured) {
		t.Errorf("err = %v, want ErrWeatherNotConfigured", err)
	}
}
