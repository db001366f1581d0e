package ojmicroline

import (
	"net/url"
	"time"
)

// API describes one of the OJ Microline api families. It is implemented by
// WD5API and WG4API only.
type API interface {
	Host() string

	LoginPath() string
	LoginBody() any

	ThermostatsPath() string
	ThermostatsParams() url.Values
	ParseThermostats(data []byte) ([]Thermostat, error)

	UpdatePath() string
	UpdateParams(t *Thermostat) url.Values
	UpdateBody(t *Thermostat, mode RegulationMode, temperature int, duration time.Duration) any
	ParseUpdate(data []byte) (bool, error)

	family() string
}

var (
	_ API = (*WD5API)(nil)
	_ API = (*WG4API)(nil)
)
