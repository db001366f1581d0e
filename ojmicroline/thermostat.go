package ojmicroline

import (
	"math"
	"time"
)

const (
	MODEL_WD5 = "OWD5"
	MODEL_WG4 = "UWG4"
)

// SensorReading holds the floor and room sensors of a WD5 thermostat
type SensorReading struct {
	Mode  SensorMode
	Floor int
	Room  int
}

// UnifiedReading holds the temperature and set point reported by a WG4 thermostat
type UnifiedReading struct {
	Temperature int
	SetPoint    int
}

// Thermostat is a single thermostat of either api family.
// Temperatures are in 1/100 °C. Fields only exposed by one family are nil for the other,
// exactly one of Sensor and Unified is set.
type Thermostat struct {
	Model           string
	SerialNumber    string
	SoftwareVersion string
	ZoneName        string
	ZoneID          int
	Name            string

	Online                bool
	Heating               bool
	LastPrimaryModeIsAuto bool

	RegulationMode           RegulationMode
	SupportedRegulationModes []RegulationMode

	MinTemperature     int
	MaxTemperature     int
	ComfortTemperature int
	ManualTemperature  int

	VacationTemperature        *int
	FrostProtectionTemperature *int
	BoostTemperature           *int

	Sensor  *SensorReading
	Unified *UnifiedReading

	ComfortEndTime    time.Time
	BoostEndTime      *time.Time
	VacationBeginTime *time.Time
	VacationEndTime   *time.Time
	VacationMode      *bool

	// WD5 only
	ThermostatID         *int
	AdaptiveMode         *bool
	OpenWindowDetection  *bool
	DaylightSavingActive *bool
	Offset               *int
	Schedule             *WeeklySchedule
}

// TargetTemperature returns the temperature the thermostat currently regulates to
func (t *Thermostat) TargetTemperature() int {
	return t.TargetTemperatureAt(time.Now())
}

// TargetTemperatureAt returns the temperature the thermostat regulates to at the given time
func (t *Thermostat) TargetTemperatureAt(now time.Time) int {
	if t.Unified != nil {
		return t.Unified.SetPoint
	}

	switch t.RegulationMode {
	case RegulationSchedule:
		return t.schedule(now).ActiveTemperature(now)
	case RegulationComfort:
		return t.ComfortTemperature
	case RegulationManual:
		return t.ManualTemperature
	case RegulationVacation:
		return value(t.VacationTemperature)
	case RegulationFrostProtection:
		return value(t.FrostProtectionTemperature)
	case RegulationBoost:
		return value(t.BoostTemperature)
	case RegulationEco:
		return t.schedule(now).LowestTemperature()
	}

	return 0
}

// CurrentTemperature returns the measured temperature according to the sensor mode
func (t *Thermostat) CurrentTemperature() int {
	if t.Unified != nil {
		return t.Unified.Temperature
	}

	if t.Sensor == nil {
		return 0
	}

	switch t.Sensor.Mode {
	case SensorRoom:
		return t.Sensor.Room
	case SensorFloor:
		return t.Sensor.Floor
	case SensorRoomFloor:
		return int(math.Ceil(float64(t.Sensor.Floor+t.Sensor.Room) / 2))
	}

	return 0
}

// schedule is empty if the document is missing or malformed
func (t *Thermostat) schedule(now time.Time) Schedule {
	res, err := NewSchedule(t.Schedule, now)
	if err != nil {
		return Schedule{}
	}
	return res
}

func value[T any](v *T) T {
	var res T
	if v != nil {
		res = *v
	}
	return res
}

func ptr[T any](v T) *T {
	return &v
}
