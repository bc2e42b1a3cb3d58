package weather

import "sprout/entities"

type mockClient struct{}

// NewMock returns a client with fixed mild conditions, used when no weather
// endpoint is configured.
func NewMock() Client { return &mockClient{} }

func (mockClient) Current() (*entities.WeatherReading, error) {
	return &entities.WeatherReading{
		Temperature: 21.0,
		Humidity:    55.0,
		RainfallMM:  0,
		Forecast: []entities.ForecastDay{
			{Date: "today", TempMaxC: 24, TempMinC: 14, RainfallMM: 0},
			{Date: "tomorrow", TempMaxC: 23, TempMinC: 13, RainfallMM: 2},
		},
	}, nil
}
