package ojmicroline

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// WG4API controls WG4-series thermostats (UWG4, AWG4)
type WG4API struct {
	user     string
	password string
	host     string
	now      func() time.Time
}

type WG4Option func(*WG4API)

// WithWG4Host sets the api host name
func WithWG4Host(host string) WG4Option {
	return func(a *WG4API) {
		a.host = host
	}
}

func NewWG4API(user, password string, opts ...WG4Option) *WG4API {
	a := &WG4API{
		user:     user,
		password: password,
		host:     WG4_HOST,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *WG4API) family() string { return "wg4" }

func (a *WG4API) Host() string { return a.host }

func (a *WG4API) LoginPath() string { return WG4_LOGIN_PATH }

func (a *WG4API) LoginBody() any {
	return WG4LoginRequest{
		Application: 2,
		Confirm:     "",
		Email:       a.user,
		Password:    a.password,
	}
}

func (a *WG4API) ThermostatsPath() string { return WG4_THERMOSTATS_PATH }

func (a *WG4API) ThermostatsParams() url.Values { return nil }

func (a *WG4API) ParseThermostats(data []byte) ([]Thermostat, error) {
	var res WG4Groups
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, newError(ErrRequest, "could not decode thermostats", err)
	}

	var thermostats []Thermostat
	for _, group := range res.Groups {
		for _, item := range group.Thermostats {
			if isEmptyObject(item) {
				continue
			}

			t, err := ParseWG4Thermostat(item)
			if err != nil {
				return nil, newError(ErrRequest, "could not decode thermostat", err)
			}

			thermostats = append(thermostats, t)
		}
	}

	return thermostats, nil
}

func (a *WG4API) UpdatePath() string { return WG4_UPDATE_PATH }

func (a *WG4API) UpdateParams(t *Thermostat) url.Values {
	return url.Values{"serialnumber": {t.SerialNumber}}
}

// UpdateBody only carries temperatures for manual and comfort mode
func (a *WG4API) UpdateBody(t *Thermostat, mode RegulationMode, temperature int, duration time.Duration) any {
	res := WG4UpdateRequest{
		RegulationMode:  mode,
		VacationEnabled: t.VacationMode,
	}

	switch mode {
	case RegulationManual:
		if temperature == 0 {
			temperature = t.ManualTemperature
		}
		res.ManualTemperature = &temperature

	case RegulationComfort:
		if temperature == 0 {
			temperature = t.ComfortTemperature
		}
		res.ComfortTemperature = &temperature
		res.ComfortEndTime = formatWG4Date(a.now().Add(duration))
	}

	return res
}

func (a *WG4API) ParseUpdate(data []byte) (bool, error) {
	var res WG4UpdateResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return false, newError(ErrRequest, "could not decode update response", err)
	}
	return res.Success, nil
}

// ParseWG4Thermostat creates a thermostat from the WG4 json representation
func ParseWG4Thermostat(data []byte) (Thermostat, error) {
	var res WG4Thermostat
	if err := json.Unmarshal(data, &res); err != nil {
		return Thermostat{}, err
	}

	comfortEndTime, err := ParseWG4Date(res.ComfortEndTime)
	if err != nil {
		return Thermostat{}, fmt.Errorf("ComfortEndTime: %w", err)
	}

	t := Thermostat{
		Model:           MODEL_WG4,
		SerialNumber:    res.SerialNumber,
		SoftwareVersion: res.SWVersion,
		ZoneName:        res.GroupName,
		ZoneID:          res.GroupId,
		Name:            res.Room,

		Online:                res.Online,
		Heating:               res.Heating,
		LastPrimaryModeIsAuto: res.LastPrimaryModeIsAuto,

		RegulationMode: res.RegulationMode,
		SupportedRegulationModes: []RegulationMode{
			RegulationSchedule,
			RegulationComfort,
			RegulationManual,
		},

		MinTemperature:     res.MinTemp,
		MaxTemperature:     res.MaxTemp,
		ComfortTemperature: res.ComfortTemperature,
		ManualTemperature:  res.ManualTemperature,

		Unified: &UnifiedReading{
			Temperature: res.Temperature,
			SetPoint:    res.SetPointTemp,
		},

		ComfortEndTime: comfortEndTime,
		VacationMode:   res.VacationEnabled,
	}

	// vacation days come without offset, the thermostat zone applies
	if res.TimeZone != nil {
		zone := FormatOffset(*res.TimeZone)

		if res.VacationBeginDay != "" {
			ts, err := ParseWG4VacationDate(res.VacationBeginDay, zone)
			if err != nil {
				return Thermostat{}, fmt.Errorf("VacationBeginDay: %w", err)
			}
			t.VacationBeginTime = &ts
		}

		if res.VacationEndDay != "" {
			ts, err := ParseWG4VacationDate(res.VacationEndDay, zone)
			if err != nil {
				return Thermostat{}, fmt.Errorf("VacationEndDay: %w", err)
			}
			t.VacationEndTime = &ts
		}
	}

	return t, nil
}
