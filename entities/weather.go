package entities

type ForecastDay struct {
	Date       string  `json:"date"`
	TempMaxC   float64 `json:"temp_max_c"`
	TempMinC   float64 `json:"temp_min_c"`
	RainfallMM float64 `json:"rainfall_mm"`
}

// WeatherReading is the value shape consulted from the external weather
// collaborator. It may be unavailable; callers treat that as "no weather".
type WeatherReading struct {
	Temperature float64       `json:"temperature"`
	RainfallMM  float64       `json:"rainfall"`
	Humidity    float64       `json:"humidity"`
	Forecast    []ForecastDay `json:"forecast"`
}
