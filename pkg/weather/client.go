package weather

import "sprout/entities"

// Client fetches current conditions from the external weather collaborator.
// A failed or absent reading never blocks schedule generation or task
// aggregation; callers treat errors as "no weather".
type Client interface {
	Current() (*entities.WeatherReading, error)
}
