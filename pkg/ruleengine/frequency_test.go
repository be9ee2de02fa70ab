package ruleengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyFrequencyMonthlyCadence(t *testing.T) {
	// Three Starbucks charges, mean gap ~29.5 days.
	dates := []time.Time{
		day(2024, time.January, 5),
		day(2024, time.February, 3),
		day(2024, time.March, 7),
	}

	assert.Equal(t, FrequencyMonthly, ClassifyFrequency(dates))
}

func TestClassifyFrequencyBuckets(t *testing.T) {
	cases := []struct {
		name    string
		gapDays int
		want    Frequency
	}{
		{"weekly", 7, FrequencyWeekly},
		{"biweekly", 14, FrequencyBiWeekly},
		{"monthly", 30, FrequencyMonthly},
		{"quarterly", 90, FrequencyQuarterly},
		{"semi-annually", 180, FrequencySemiAnnually},
		{"annually", 365, FrequencyAnnually},
		{"too frequent", 2, FrequencyIrregular},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := day(2024, time.January, 1)
			dates := []time.Time{
				start,
				start.AddDate(0, 0, tc.gapDays),
				start.AddDate(0, 0, 2*tc.gapDays),
			}
			assert.Equal(t, tc.want, ClassifyFrequency(dates))
		})
	}
}

func TestClassifyFrequencyOrderIndependent(t *testing.T) {
	dates := []time.Time{
		day(2024, time.March, 7),
		day(2024, time.January, 5),
		day(2024, time.February, 3),
	}

	assert.Equal(t, FrequencyMonthly, ClassifyFrequency(dates))
}

func TestClassifyFrequencyTooFewDates(t *testing.T) {
	assert.Equal(t, FrequencyIrregular, ClassifyFrequency(nil))
	assert.Equal(t, FrequencyIrregular, ClassifyFrequency([]time.Time{day(2024, time.January, 5)}))
}

func TestClassifyFrequencyTwoDatesFortyDaysApartIsQuarterly(t *testing.T) {
	// Weak evidence still lands in a bucket; no confidence measure.
	dates := []time.Time{
		day(2024, time.January, 1),
		day(2024, time.February, 10),
	}

	assert.Equal(t, FrequencyQuarterly, ClassifyFrequency(dates))
}
