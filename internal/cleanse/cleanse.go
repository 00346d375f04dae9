// Package cleanse normalizes raw dataset rows into the shapes the
// aggregation and alerting pipeline consumes.
package cleanse

import (
	"strconv"
	"strings"

	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/model"
)

// DecimalHours converts a clock-format duration ("HH:MM:SS" or "HH:MM")
// into decimal hours.
func DecimalHours(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, errors.Newf("invalid clock duration: %q", s).
			Component("cleanse").
			Category(errors.CategoryValidation).
			Context("value", s).
			Build()
	}

	var fields [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v < 0 {
			return 0, errors.Newf("invalid clock duration: %q", s).
				Component("cleanse").
				Category(errors.CategoryValidation).
				Context("value", s).
				Build()
		}
		fields[i] = v
	}

	return fields[0] + fields[1]/60 + fields[2]/3600, nil
}

// NormalizeSun converts raw sun records into normalized days with decimal
// daylight hours. Rows with an absent or unparsable duration are skipped,
// matching how absent values fall out of downstream means.
func NormalizeSun(recs []model.SunRecord) []model.SunDay {
	days := make([]model.SunDay, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		if !rec.HoursOfDaylight.Valid {
			continue
		}
		hours, err := DecimalHours(rec.HoursOfDaylight.String)
		if err != nil {
			continue
		}
		days = append(days, model.SunDay{Date: rec.Date, Hours: hours})
	}
	return days
}

// ChartableMeasurements returns the rows where every core sensor reading is
// present. The input slice is not modified; rows with missing readings stay
// available in the raw dataset for other consumers.
func ChartableMeasurements(recs []model.MeasurementRecord) []model.MeasurementRecord {
	out := make([]model.MeasurementRecord, 0, len(recs))
	for i := range recs {
		if recs[i].HasCoreReadings() {
			out = append(out, recs[i])
		}
	}
	return out
}
