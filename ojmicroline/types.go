package ojmicroline

import (
	"encoding/json"
	"time"
)

const (
	WD5_HOST = "ocd5.azurewebsites.net"
	WG4_HOST = "mythermostat.info"

	WD5_LOGIN_PATH       = "api/UserProfile/SignIn"
	WD5_THERMOSTATS_PATH = "api/Group/GroupContents"
	WD5_UPDATE_PATH      = "api/Group/UpdateGroup"

	WG4_LOGIN_PATH       = "api/authenticate/user"
	WG4_THERMOSTATS_PATH = "api/thermostats"
	WG4_UPDATE_PATH      = "api/thermostat"
)

const (
	WD5_DATETIME_FORMAT = "2006-01-02T15:04:05"
	WG4_DATETIME_FORMAT = "02/01/2006 15:04:05 -07:00"
)

const (
	// SESSION_CALLS is the number of requests a session id is used for
	SESSION_CALLS = 300

	// COMFORT_DURATION is the default length of a comfort override
	COMFORT_DURATION = 240 * time.Minute

	// BOOST_DURATION is the length of a boost started by this client
	BOOST_DURATION = time.Hour

	CLIENT_SW_VERSION = 1060

	REQUEST_TIMEOUT = 30 * time.Second
)

// vendor result codes
const (
	errorCodeSuccess = 0
	errorCodeFailure = 1
)

type RegulationMode int

const (
	RegulationSchedule        RegulationMode = 1
	RegulationComfort         RegulationMode = 2
	RegulationManual          RegulationMode = 3
	RegulationVacation        RegulationMode = 4
	RegulationFrostProtection RegulationMode = 6
	RegulationBoost           RegulationMode = 8
	RegulationEco             RegulationMode = 9
)

func (m RegulationMode) String() string {
	switch m {
	case RegulationSchedule:
		return "Schedule"
	case RegulationComfort:
		return "Comfort"
	case RegulationManual:
		return "Manual"
	case RegulationVacation:
		return "Vacation"
	case RegulationFrostProtection:
		return "Frost Protection"
	case RegulationBoost:
		return "Boost"
	case RegulationEco:
		return "Eco"
	}
	return "Unknown"
}

type SensorMode int

const (
	SensorRoomFloor SensorMode = 1
	SensorFloor     SensorMode = 3
	SensorRoom      SensorMode = 4
)

func (m SensorMode) String() string {
	switch m {
	case SensorRoomFloor:
		return "Room/Floor"
	case SensorFloor:
		return "Floor"
	case SensorRoom:
		return "Room"
	}
	return "Unknown"
}

type SessionResponse struct {
	SessionId string `json:"SessionId"`
	ErrorCode int    `json:"ErrorCode"`
}

// WD5 Types

type WD5LoginRequest struct {
	APIKey          string `json:"APIKEY"`
	UserName        string `json:"UserName"`
	Password        string `json:"Password"`
	ClientSWVersion int    `json:"ClientSWVersion"`
	CustomerId      int    `json:"CustomerId"`
}

type WD5GroupContents struct {
	ErrorCode     int `json:"ErrorCode"`
	GroupContents []struct {
		Thermostats []json.RawMessage `json:"Thermostats"`
	} `json:"GroupContents"`
}

type WD5Thermostat struct {
	Id                         int             `json:"Id"`
	SerialNumber               string          `json:"SerialNumber"`
	SWversion                  string          `json:"SWversion"`
	GroupName                  string          `json:"GroupName"`
	GroupId                    int             `json:"GroupId"`
	ThermostatName             string          `json:"ThermostatName"`
	Online                     bool            `json:"Online"`
	Heating                    bool            `json:"Heating"`
	RegulationMode             RegulationMode  `json:"RegulationMode"`
	SensorAppl                 SensorMode      `json:"SensorAppl"`
	AdaptiveMode               bool            `json:"AdaptiveMode"`
	OpenWindow                 bool            `json:"OpenWindow"`
	LastPrimaryModeIsAuto      bool            `json:"LastPrimaryModeIsAuto"`
	DaylightSavingActive       bool            `json:"DaylightSavingActive"`
	VacationEnabled            bool            `json:"VacationEnabled"`
	FloorTemperature           int             `json:"FloorTemperature"`
	RoomTemperature            int             `json:"RoomTemperature"`
	MinSetpoint                int             `json:"MinSetpoint"`
	MaxSetpoint                int             `json:"MaxSetpoint"`
	ComfortSetpoint            int             `json:"ComfortSetpoint"`
	ManualModeSetpoint         int             `json:"ManualModeSetpoint"`
	VacationTemperature        int             `json:"VacationTemperature"`
	FrostProtectionTemperature int             `json:"FrostProtectionTemperature"`
	BoostEndTime               string          `json:"BoostEndTime"`
	ComfortEndTime             string          `json:"ComfortEndTime"`
	VacationBeginDay           string          `json:"VacationBeginDay"`
	VacationEndDay             string          `json:"VacationEndDay"`
	TimeZone                   int             `json:"TimeZone"`
	Schedule                   *WeeklySchedule `json:"Schedule"`
}

type WD5SetGroup struct {
	ExcludeVacationData   bool            `json:"ExcludeVacationData"`
	GroupId               int             `json:"GroupId"`
	GroupName             string          `json:"GroupName"`
	BoostEndTime          *string         `json:"BoostEndTime"`
	ComfortEndTime        *string         `json:"ComfortEndTime"`
	ComfortSetpoint       int             `json:"ComfortSetpoint"`
	LastPrimaryModeIsAuto bool            `json:"LastPrimaryModeIsAuto"`
	ManualModeSetpoint    int             `json:"ManualModeSetpoint"`
	RegulationMode        RegulationMode  `json:"RegulationMode"`
	Schedule              *WeeklySchedule `json:"Schedule"`
	VacationEnabled       *bool           `json:"VacationEnabled"`
	VacationBeginDay      *string         `json:"VacationBeginDay"`
	VacationEndDay        *string         `json:"VacationEndDay"`
	VacationTemperature   *int            `json:"VacationTemperature"`
}

type WD5UpdateRequest struct {
	APIKey   string      `json:"APIKEY"`
	SetGroup WD5SetGroup `json:"SetGroup"`
}

type WD5UpdateResponse struct {
	ErrorCode int `json:"ErrorCode"`
}

// WG4 Types

type WG4LoginRequest struct {
	Application int    `json:"Application"`
	Confirm     string `json:"Confirm"`
	Email       string `json:"Email"`
	Password    string `json:"Password"`
}

type WG4Groups struct {
	Groups []struct {
		Thermostats []json.RawMessage `json:"Thermostats"`
	} `json:"Groups"`
}

type WG4Thermostat struct {
	SerialNumber          string         `json:"SerialNumber"`
	SWVersion             string         `json:"SWVersion"`
	GroupName             string         `json:"GroupName"`
	GroupId               int            `json:"GroupId"`
	Room                  string         `json:"Room"`
	Online                bool           `json:"Online"`
	Heating               bool           `json:"Heating"`
	RegulationMode        RegulationMode `json:"RegulationMode"`
	LastPrimaryModeIsAuto bool           `json:"LastPrimaryModeIsAuto"`
	MinTemp               int            `json:"MinTemp"`
	MaxTemp               int            `json:"MaxTemp"`
	Temperature           int            `json:"Temperature"`
	SetPointTemp          int            `json:"SetPointTemp"`
	ManualTemperature     int            `json:"ManualTemperature"`
	ComfortTemperature    int            `json:"ComfortTemperature"`
	ComfortEndTime        string         `json:"ComfortEndTime"`
	VacationEnabled       *bool          `json:"VacationEnabled"`
	VacationBeginDay      string         `json:"VacationBeginDay"`
	VacationEndDay        string         `json:"VacationEndDay"`
	TimeZone              *int           `json:"TimeZone"`
}

type WG4UpdateRequest struct {
	RegulationMode     RegulationMode `json:"RegulationMode"`
	VacationEnabled    *bool          `json:"VacationEnabled"`
	ManualTemperature  *int           `json:"ManualTemperature,omitempty"`
	ComfortTemperature *int           `json:"ComfortTemperature,omitempty"`
	ComfortEndTime     string         `json:"ComfortEndTime,omitempty"`
}

type WG4UpdateResponse struct {
	Success bool `json:"Success"`
}
