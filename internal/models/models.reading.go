// FilePath: internal/models/models.reading.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reading is one timestamped weather observation. The bson element names
// mirror the column headers of the original station export and are the
// storage contract of the WeatherData collection.
type Reading struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DeviceName          string             `json:"device_name" bson:"Device Name"`
	Precipitation       float64            `json:"precipitation_mm_h" bson:"Precipitation mm/h"`
	Time                time.Time          `json:"time" bson:"Time"`
	Latitude            float64            `json:"latitude" bson:"Latitude"`
	Longitude           float64            `json:"longitude" bson:"Longitude"`
	Temperature         float64            `json:"temperature_c" bson:"Temperature (°C)"`
	AtmosphericPressure float64            `json:"atmospheric_pressure_kpa" bson:"Atmospheric Pressure(kPa)"`
	MaxWindSpeed        float64            `json:"max_wind_speed_m_s" bson:"Max Wind Speed (m/s)"`
	SolarRadiation      float64            `json:"solar_radiation_w_m2" bson:"Solar Radiation (W/m2)"`
	VaporPressure       float64            `json:"vapor_pressure_kpa" bson:"Vapor Pressure (kPa)"`
	Humidity            float64            `json:"humidity_pct" bson:"Humidity (%)"`
	WindDirection       float64            `json:"wind_direction_deg" bson:"Wind Direction (°)"`
}

// MaxTemperature is one row of the per-station maximum temperature
// aggregation.
type MaxTemperature struct {
	DeviceName  string    `json:"device_name" bson:"Device Name"`
	Time        time.Time `json:"time" bson:"Time"`
	Temperature float64   `json:"temperature_c" bson:"Temperature (°C)"`
}

// MaxPrecipitation is the single-row result of the rolling-window maximum
// precipitation query.
type MaxPrecipitation struct {
	DeviceName    string    `json:"device_name" bson:"Device Name"`
	Time          time.Time `json:"time" bson:"Time"`
	Precipitation float64   `json:"precipitation_mm_h" bson:"Precipitation mm/h"`
}
