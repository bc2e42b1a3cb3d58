package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sprout/entities"
)

type httpClient struct {
	endpoint string
	lat, lon float64
}

func NewHTTP(endpoint string, lat, lon float64) Client {
	return &httpClient{endpoint: endpoint, lat: lat, lon: lon}
}

// Response shape of an open-meteo style forecast endpoint.
type apiResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		Rain        float64 `json:"precipitation"`
	} `json:"current"`
	Daily struct {
		Time    []string  `json:"time"`
		TempMax []float64 `json:"temperature_2m_max"`
		TempMin []float64 `json:"temperature_2m_min"`
		Rain    []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

func (c *httpClient) Current() (*entities.WeatherReading, error) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m,precipitation&daily=temperature_2m_max,temperature_2m_min,precipitation_sum",
		strings.TrimRight(c.endpoint, "/"), c.lat, c.lon,
	)
	httpc := &http.Client{Timeout: 10 * time.Second}
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather endpoint returned %d", resp.StatusCode)
	}
	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	reading := &entities.WeatherReading{
		Temperature: out.Current.Temperature,
		Humidity:    out.Current.Humidity,
		RainfallMM:  out.Current.Rain,
	}
	for i, day := range out.Daily.Time {
		fd := entities.ForecastDay{Date: day}
		if i < len(out.Daily.TempMax) {
			fd.TempMaxC = out.Daily.TempMax[i]
		}
		if i < len(out.Daily.TempMin) {
			fd.TempMinC = out.Daily.TempMin[i]
		}
		if i < len(out.Daily.Rain) {
			fd.RainfallMM = out.Daily.Rain[i]
		}
		reading.Forecast = append(reading.Forecast, fd)
	}
	return reading, nil
}
