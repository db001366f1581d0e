package ojmicroline

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// WD5API controls WD5-series thermostats (OWD5, MWD5)
type WD5API struct {
	apiKey          string
	customerID      int
	user            string
	password        string
	clientSWVersion int
	host            string
	now             func() time.Time
}

type WD5Option func(*WD5API)

// WithClientSWVersion sets the client software version sent on login
func WithClientSWVersion(version int) WD5Option {
	return func(a *WD5API) {
		a.clientSWVersion = version
	}
}

// WithWD5Host sets the api host name
func WithWD5Host(host string) WD5Option {
	return func(a *WD5API) {
		a.host = host
	}
}

func NewWD5API(apiKey string, customerID int, user, password string, opts ...WD5Option) *WD5API {
	a := &WD5API{
		apiKey:          apiKey,
		customerID:      customerID,
		user:            user,
		password:        password,
		clientSWVersion: CLIENT_SW_VERSION,
		host:            WD5_HOST,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *WD5API) family() string { return "wd5" }

func (a *WD5API) Host() string { return a.host }

func (a *WD5API) LoginPath() string { return WD5_LOGIN_PATH }

func (a *WD5API) LoginBody() any {
	return WD5LoginRequest{
		APIKey:          a.apiKey,
		UserName:        a.user,
		Password:        a.password,
		ClientSWVersion: a.clientSWVersion,
		CustomerId:      a.customerID,
	}
}

func (a *WD5API) ThermostatsPath() string { return WD5_THERMOSTATS_PATH }

func (a *WD5API) ThermostatsParams() url.Values {
	return url.Values{"APIKEY": {a.apiKey}}
}

func (a *WD5API) ParseThermostats(data []byte) ([]Thermostat, error) {
	var res WD5GroupContents
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, newError(ErrRequest, "could not decode thermostats", err)
	}

	if res.ErrorCode == errorCodeFailure {
		e := newError(ErrResults, "unable to get thermostats via api", nil)
		e.Details = map[string]string{"data": string(data)}
		return nil, e
	}

	var thermostats []Thermostat
	for _, group := range res.GroupContents {
		for _, item := range group.Thermostats {
			if isEmptyObject(item) {
				continue
			}

			t, err := ParseWD5Thermostat(item)
			if err != nil {
				return nil, newError(ErrRequest, "could not decode thermostat", err)
			}

			thermostats = append(thermostats, t)
		}
	}

	return thermostats, nil
}

func (a *WD5API) UpdatePath() string { return WD5_UPDATE_PATH }

func (a *WD5API) UpdateParams(_ *Thermostat) url.Values { return nil }

func (a *WD5API) UpdateBody(t *Thermostat, mode RegulationMode, temperature int, duration time.Duration) any {
	now := a.now()

	comfortEndTime := &t.ComfortEndTime
	comfortTemperature := t.ComfortTemperature
	if mode == RegulationComfort {
		comfortEndTime = ptr(now.Add(duration).Local())
		if temperature != 0 {
			comfortTemperature = temperature
		}
	}

	boostEndTime := t.BoostEndTime
	if mode == RegulationBoost {
		boostEndTime = ptr(now.Add(BOOST_DURATION).Local())
	}

	manualTemperature := t.ManualTemperature
	if mode == RegulationManual && temperature != 0 {
		manualTemperature = temperature
	}

	return WD5UpdateRequest{
		APIKey: a.apiKey,
		SetGroup: WD5SetGroup{
			ExcludeVacationData:   false,
			GroupId:               t.ZoneID,
			GroupName:             t.ZoneName,
			BoostEndTime:          formatWD5Date(boostEndTime),
			ComfortEndTime:        formatWD5Date(comfortEndTime),
			ComfortSetpoint:       comfortTemperature,
			LastPrimaryModeIsAuto: t.RegulationMode == RegulationSchedule,
			ManualModeSetpoint:    manualTemperature,
			RegulationMode:        mode,
			Schedule:              t.Schedule,
			VacationEnabled:       t.VacationMode,
			VacationBeginDay:      formatWD5Date(t.VacationBeginTime),
			VacationEndDay:        formatWD5Date(t.VacationEndTime),
			VacationTemperature:   t.VacationTemperature,
		},
	}
}

// ParseUpdate accepts anything but the failure code
func (a *WD5API) ParseUpdate(data []byte) (bool, error) {
	var res WD5UpdateResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return false, newError(ErrRequest, "could not decode update response", err)
	}
	return res.ErrorCode != errorCodeFailure, nil
}

// ParseWD5Thermostat creates a thermostat from the WD5 json representation
func ParseWD5Thermostat(data []byte) (Thermostat, error) {
	var res WD5Thermostat
	if err := json.Unmarshal(data, &res); err != nil {
		return Thermostat{}, err
	}

	if _, err := NewSchedule(res.Schedule, time.Now()); err != nil {
		return Thermostat{}, err
	}

	dates := make(map[string]time.Time, 4)
	for key, value := range map[string]string{
		"BoostEndTime":     res.BoostEndTime,
		"ComfortEndTime":   res.ComfortEndTime,
		"VacationBeginDay": res.VacationBeginDay,
		"VacationEndDay":   res.VacationEndDay,
	} {
		ts, err := ParseWD5Date(value, res.TimeZone)
		if err != nil {
			return Thermostat{}, fmt.Errorf("%s: %w", key, err)
		}
		dates[key] = ts
	}

	return Thermostat{
		Model:           MODEL_WD5,
		SerialNumber:    res.SerialNumber,
		SoftwareVersion: res.SWversion,
		ZoneName:        res.GroupName,
		ZoneID:          res.GroupId,
		Name:            res.ThermostatName,

		Online:                res.Online,
		Heating:               res.Heating,
		LastPrimaryModeIsAuto: res.LastPrimaryModeIsAuto,

		RegulationMode: res.RegulationMode,
		SupportedRegulationModes: []RegulationMode{
			RegulationSchedule,
			RegulationComfort,
			RegulationManual,
			RegulationVacation,
			RegulationFrostProtection,
			RegulationBoost,
			RegulationEco,
		},

		MinTemperature:     res.MinSetpoint,
		MaxTemperature:     res.MaxSetpoint,
		ComfortTemperature: res.ComfortSetpoint,
		ManualTemperature:  res.ManualModeSetpoint,

		VacationTemperature:        ptr(res.VacationTemperature),
		FrostProtectionTemperature: ptr(res.FrostProtectionTemperature),
		BoostTemperature:           ptr(res.MaxSetpoint),

		Sensor: &SensorReading{
			Mode:  res.SensorAppl,
			Floor: res.FloorTemperature,
			Room:  res.RoomTemperature,
		},

		ComfortEndTime:    dates["ComfortEndTime"],
		BoostEndTime:      ptr(dates["BoostEndTime"]),
		VacationBeginTime: ptr(dates["VacationBeginDay"]),
		VacationEndTime:   ptr(dates["VacationEndDay"]),
		VacationMode:      ptr(res.VacationEnabled),

		ThermostatID:         ptr(res.Id),
		AdaptiveMode:         ptr(res.AdaptiveMode),
		OpenWindowDetection:  ptr(res.OpenWindow),
		DaylightSavingActive: ptr(res.DaylightSavingActive),
		Offset:               ptr(res.TimeZone),
		Schedule:             res.Schedule,
	}, nil
}

func isEmptyObject(data json.RawMessage) bool {
	var res map[string]json.RawMessage
	if err := json.Unmarshal(data, &res); err != nil {
		return len(data) == 0
	}
	return len(res) == 0
}
