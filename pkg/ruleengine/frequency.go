package ruleengine

import (
	"sort"
	"time"
)

type Frequency string

const (
	FrequencyWeekly       Frequency = "Weekly"
	FrequencyBiWeekly     Frequency = "Bi-weekly"
	FrequencyMonthly      Frequency = "Monthly"
	FrequencyQuarterly    Frequency = "Quarterly"
	FrequencySemiAnnually Frequency = "Semi-Annually"
	FrequencyAnnually     Frequency = "Annually"
	FrequencyIrregular    Frequency = "Irregular"
)

// ClassifyFrequency buckets a merchant's transaction dates by the mean gap in
// days between consecutive transactions. There is no outlier rejection; two
// dates are enough to land in a bucket.
//
// Buckets: <6d Irregular, 6-8 Weekly, 13-16 Bi-weekly, <=35 Monthly,
// <=95 Quarterly, <=190 Semi-Annually, else Annually.
func ClassifyFrequency(dates []time.Time) Frequency {
	if len(dates) < 2 {
		return FrequencyIrregular
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	var totalDays float64
	for i := 0; i < len(sorted)-1; i++ {
		totalDays += sorted[i].Sub(sorted[i+1]).Hours() / 24
	}
	meanGap := totalDays / float64(len(sorted)-1)

	switch {
	case meanGap < 6:
		return FrequencyIrregular
	case meanGap <= 8:
		return FrequencyWeekly
	case meanGap >= 13 && meanGap <= 16:
		return FrequencyBiWeekly
	case meanGap <= 35:
		return FrequencyMonthly
	case meanGap <= 95:
		return FrequencyQuarterly
	case meanGap <= 190:
		return FrequencySemiAnnually
	default:
		return FrequencyAnnually
	}
}
