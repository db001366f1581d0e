package ojmicroline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}

	return b
}

func readSchedule(t *testing.T) *WeeklySchedule {
	t.Helper()

	var res WeeklySchedule
	if err := json.Unmarshal(readFixture(t, "schedule.json"), &res); err != nil {
		t.Fatalf("unmarshal schedule: %v", err)
	}

	return &res
}

func TestNormalizeDayCode(t *testing.T) {
	for code, day := range map[int]int{0: 6, 1: 0, 2: 1, 3: 2, 4: 3, 5: 4, 6: 5} {
		if res := NormalizeDayCode(code); res != day {
			t.Errorf("day code %d: expected %d, got %d", code, day, res)
		}
	}
}

func TestScheduleActiveTemperature(t *testing.T) {
	doc := readSchedule(t)

	for _, tc := range []struct {
		name string
		now  time.Time
		temp int
	}{
		{"sunday during second event", time.Date(2023, 1, 1, 11, 30, 35, 0, time.UTC), 2500},
		{"sunday before first event", time.Date(2023, 1, 1, 7, 0, 0, 0, time.UTC), 2000},
		{"monday before first event", time.Date(2023, 1, 2, 5, 0, 0, 0, time.UTC), 1700},
		{"tuesday morning", time.Date(2023, 1, 3, 9, 0, 0, 0, time.UTC), 1900},
		{"tuesday skips inactive event", time.Date(2023, 1, 3, 12, 30, 0, 0, time.UTC), 1900},
		{"wednesday at event start", time.Date(2023, 1, 4, 6, 0, 0, 0, time.UTC), 2200},
		{"saturday late", time.Date(2023, 1, 7, 23, 59, 59, 0, time.UTC), 2000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSchedule(doc, tc.now)
			if err != nil {
				t.Fatalf("new schedule: %v", err)
			}

			if res := s.ActiveTemperature(tc.now); res != tc.temp {
				t.Fatalf("expected %d, got %d", tc.temp, res)
			}
		})
	}
}

func TestScheduleDayRollover(t *testing.T) {
	doc := &WeeklySchedule{Days: []ScheduleDay{
		{WeekDayGrpNo: 2, Events: []WeeklyScheduleEvent{{Clock: "08:30:00", Temperature: 2500, Active: true}}},
		{WeekDayGrpNo: 3, Events: []WeeklyScheduleEvent{{Clock: "08:30:00", Temperature: 2600, Active: true}}},
	}}

	for _, tc := range []struct {
		name string
		now  time.Time
		temp int
	}{
		{"wednesday before first event", time.Date(2023, 1, 4, 6, 0, 0, 0, time.UTC), 2500},
		{"wednesday after first event", time.Date(2023, 1, 4, 9, 0, 0, 0, time.UTC), 2600},
		{"thursday falls back to wednesday", time.Date(2023, 1, 5, 6, 0, 0, 0, time.UTC), 2600},
		{"friday after empty thursday", time.Date(2023, 1, 6, 12, 0, 0, 0, time.UTC), 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSchedule(doc, tc.now)
			if err != nil {
				t.Fatal(err)
			}

			if res := s.ActiveTemperature(tc.now); res != tc.temp {
				t.Fatalf("expected %d, got %d", tc.temp, res)
			}
		})
	}
}

func TestScheduleWeekPlacement(t *testing.T) {
	ref := time.Date(2023, 1, 3, 9, 0, 0, 0, time.UTC)

	s, err := NewSchedule(readSchedule(t), ref)
	if err != nil {
		t.Fatal(err)
	}

	if len(s) != 7 {
		t.Fatalf("expected 7 days, got %d", len(s))
	}

	// inactive events are dropped
	if n := len(s[1]); n != 4 {
		t.Fatalf("expected 4 events on tuesday, got %d", n)
	}

	if ts := s[0][0].Time; !ts.Equal(time.Date(2023, 1, 2, 6, 0, 0, 0, time.UTC)) {
		t.Fatalf("monday event at %v", ts)
	}

	if ts := s[6][3].Time; !ts.Equal(time.Date(2023, 1, 8, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("sunday event at %v", ts)
	}
}

func TestScheduleEmpty(t *testing.T) {
	s, err := NewSchedule(nil, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if res := s.ActiveTemperature(time.Now()); res != 0 {
		t.Fatalf("expected 0, got %d", res)
	}

	if res := s.LowestTemperature(); res != 0 {
		t.Fatalf("expected 0, got %d", res)
	}
}

func TestScheduleLowestTemperature(t *testing.T) {
	s, err := NewSchedule(readSchedule(t), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if res := s.LowestTemperature(); res != 900 {
		t.Fatalf("expected 900, got %d", res)
	}
}

func TestScheduleInvalidClock(t *testing.T) {
	doc := &WeeklySchedule{Days: []ScheduleDay{{
		WeekDayGrpNo: 1,
		Events:       []WeeklyScheduleEvent{{Clock: "25:61", Temperature: 2000, Active: true}},
	}}}

	if _, err := NewSchedule(doc, time.Now()); err == nil {
		t.Fatal("expected error")
	}
}

func TestWeeklyScheduleMarshal(t *testing.T) {
	doc := readSchedule(t)

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	// unknown vendor fields survive
	if !bytes.Contains(b, []byte(`"ModeType"`)) || !bytes.Contains(b, []byte(`"ScheduleType"`)) {
		t.Fatalf("schedule not preserved: %s", b)
	}

	b, err = json.Marshal(WeeklySchedule{Days: []ScheduleDay{{WeekDayGrpNo: 1}}})
	if err != nil {
		t.Fatal(err)
	}

	if string(b) != `{"Days":[{"WeekDayGrpNo":1,"Events":null}]}` {
		t.Fatalf("unexpected json: %s", b)
	}
}
