package ojmicroline

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// WeeklySchedule is the schedule document as returned by the WD5 api.
// It marshals back to the exact bytes it was decoded from.
type WeeklySchedule struct {
	Days []ScheduleDay `json:"Days"`
	raw  json.RawMessage
}

type ScheduleDay struct {
	WeekDayGrpNo int                   `json:"WeekDayGrpNo"`
	Events       []WeeklyScheduleEvent `json:"Events"`
}

type WeeklyScheduleEvent struct {
	Clock       string `json:"Clock"`
	Temperature int    `json:"Temperature"`
	Active      bool   `json:"Active"`
}

type weeklySchedule struct {
	Days []ScheduleDay `json:"Days"`
}

func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var res weeklySchedule
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}

	s.Days = res.Days
	s.raw = append(json.RawMessage(nil), data...)

	return nil
}

func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}
	return json.Marshal(weeklySchedule{Days: s.Days})
}

// ScheduleEvent is an active schedule event placed in the current week
type ScheduleEvent struct {
	Time        time.Time
	Temperature int
}

// Schedule maps the day of week (0 = Monday .. 6 = Sunday) to its events in vendor order
type Schedule map[int][]ScheduleEvent

// NormalizeDayCode converts the vendor day code (0 = Sunday, 1 = Monday, ...) to 0 = Monday .. 6 = Sunday
func NormalizeDayCode(code int) int {
	switch code {
	case 0:
		return 6
	case 1:
		return 0
	default:
		return code - 1
	}
}

func weekday(ts time.Time) int {
	return (int(ts.Weekday()) + 6) % 7
}

// NewSchedule places the active events of the document into the week of ref
func NewSchedule(doc *WeeklySchedule, ref time.Time) (Schedule, error) {
	res := make(Schedule)
	if doc == nil {
		return res, nil
	}

	current := weekday(ref)

	for _, item := range doc.Days {
		day := NormalizeDayCode(item.WeekDayGrpNo)

		events := make([]ScheduleEvent, 0, len(item.Events))
		for _, event := range item.Events {
			if !event.Active {
				continue
			}

			clock, err := time.Parse(time.TimeOnly, event.Clock)
			if err != nil {
				return nil, fmt.Errorf("invalid schedule clock: %w", err)
			}

			ts := time.Date(ref.Year(), ref.Month(), ref.Day(), clock.Hour(), clock.Minute(), clock.Second(), ref.Nanosecond(), ref.Location())

			events = append(events, ScheduleEvent{
				Time:        ts.AddDate(0, 0, day-current),
				Temperature: event.Temperature,
			})
		}

		res[day] = events
	}

	return res, nil
}

// ActiveTemperature returns the temperature of the last event of today that has
// started. Before the first event of the day the last event of yesterday applies.
func (s Schedule) ActiveTemperature(now time.Time) int {
	today := weekday(now)

	var temperature int
	for _, event := range s[today] {
		if !event.Time.After(now) {
			temperature = event.Temperature
		}
	}

	if temperature != 0 {
		return temperature
	}

	yesterday := s[(today+6)%7]
	if len(yesterday) == 0 {
		return 0
	}

	return yesterday[len(yesterday)-1].Temperature
}

// LowestTemperature returns the lowest temperature of the schedule or 0 if it has no events
func (s Schedule) LowestTemperature() int {
	lowest := math.MaxInt
	for _, events := range s {
		for _, event := range events {
			lowest = min(lowest, event.Temperature)
		}
	}

	if lowest == math.MaxInt {
		return 0
	}

	return lowest
}
