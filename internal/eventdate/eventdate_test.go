package eventdate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   time.Time
		wantOK bool
	}{
		{"long month", "August 15, 2024", NewDate(2024, time.August, 15).Time, true},
		{"long month no comma", "August 15 2024", NewDate(2024, time.August, 15).Time, true},
		{"short month", "Aug 15, 2024", NewDate(2024, time.August, 15).Time, true},
		{"weekday prefix", "Thursday, August 15, 2024", NewDate(2024, time.August, 15).Time, true},
		{"day first", "15 August 2024", NewDate(2024, time.August, 15).Time, true},
		{"iso", "2024-08-15", NewDate(2024, time.August, 15).Time, true},
		{"us numeric", "08/15/2024", NewDate(2024, time.August, 15).Time, true},
		{"ordinal suffix", "August 15th, 2024", NewDate(2024, time.August, 15).Time, true},
		{"extra whitespace", "  August   15,  2024 ", NewDate(2024, time.August, 15).Time, true},
		{"same month range", "August 15-17, 2024", NewDate(2024, time.August, 15).Time, true},
		{"spaced range", "August 15 - 17, 2024", NewDate(2024, time.August, 15).Time, true},
		{"cross month range", "August 30 - September 1, 2024", NewDate(2024, time.August, 30).Time, true},
		{"en dash range", "March 7–9, 2025", NewDate(2025, time.March, 7).Time, true},
		{"range with year on head", "December 30, 2024 - January 2, 2025", NewDate(2024, time.December, 30).Time, true},
		{"abbreviated with period", "Aug. 15, 2024", NewDate(2024, time.August, 15).Time, true},
		{"sept", "Sept 15, 2024", NewDate(2024, time.September, 15).Time, true},
		{"sept with period", "Sept. 15, 2024", NewDate(2024, time.September, 15).Time, true},
		{"day first range", "15-17 August 2024", NewDate(2024, time.August, 15).Time, true},
		{"day first cross month range", "30 August - 1 September 2024", NewDate(2024, time.August, 30).Time, true},
		{"september unchanged", "September 15, 2024", NewDate(2024, time.September, 15).Time, true},
		{"day first range without year", "15-17 August", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"tbd", "TBD", time.Time{}, false},
		{"month only", "August 2024", time.Time{}, false},
		{"range without year", "August 15-17", time.Time{}, false},
		{"leading hyphen", "-August 15, 2024x", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("someday") })
	assert.NotPanics(t, func() { MustParse("May 1, 2025") })
}

func TestDate_JSON(t *testing.T) {
	var got struct {
		Start Date  `json:"start"`
		End   *Date `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"August 15-17, 2024","end":null}`), &got))
	assert.Equal(t, "2024-08-15", got.Start.String())
	assert.Nil(t, got.End)

	b, err := json.Marshal(got.Start)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-08-15"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestDate_UnmarshalRejectsUnknown(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"next summer"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next summer")

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.Error(t, json.Unmarshal([]byte(`42`), &d))
}
