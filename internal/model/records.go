// Package model defines the tabular records loaded from the Atlas data
// service. Field tags match the column names the service emits.
package model

// UnitParameters describes a growing unit's static configuration. There is
// one row per unit and it is read-only after load.
type UnitParameters struct {
	UnitID     NullString `json:"Unit ID"`
	PlantType  NullString `json:"Plant Type 1"`
	PlantCount NullFloat  `json:"Plant Count 1"`
	Medium     NullString `json:"Medium"`

	// Nutrient targets
	Nitrogen   NullFloat `json:"N"`
	Phosphorus NullFloat `json:"P"`
	Potassium  NullFloat `json:"K"`

	// Lighting and uptime schedule
	ArtificialLightHours NullFloat `json:"Artificial Light (Hours)"`
	UptimeHours          NullFloat `json:"Uptime (Hours)"`
	DowntimeHours        NullFloat `json:"Downtime (Hours)"`

	// Watering schedule
	WateringDurationUptime   NullFloat `json:"Watering Duration Uptime (Minutes)"`
	WateringIntervalUptime   NullFloat `json:"Watering Interval Uptime (Minutes)"`
	WateringDurationDowntime NullFloat `json:"Watering Duration Downtime (Minutes)"`
	WateringIntervalDowntime NullFloat `json:"Watering Interval Downtime (Minutes)"`
}

// SunRecord is one day of daylight data as delivered by the data service.
// The duration is a clock-format string ("HH:MM:SS") until normalized.
type SunRecord struct {
	Date            NullDate   `json:"Date"`
	HoursOfDaylight NullString `json:"Hours of Daylight"`
}

// SunDay is a normalized sun record with the daylight duration converted to
// decimal hours.
type SunDay struct {
	Date  NullDate `json:"date"`
	Hours float64  `json:"hours"`
}

// MeasurementRecord is one sensor reading of the nutrient solution. Unlike
// the daily datasets this one is keyed by a timestamp column.
type MeasurementRecord struct {
	Timestamp   NullDate  `json:"Timestamp"`
	Depth       NullFloat `json:"Depth"`
	PH          NullFloat `json:"pH"`
	EC          NullFloat `json:"EC"`
	PPM         NullFloat `json:"PPM"`
	Temperature NullFloat `json:"Temperature"`
}

// HasCoreReadings reports whether depth, pH, EC, PPM and temperature are all
// present. Rows failing this check are excluded from the charting view but
// kept in the raw dataset.
func (m *MeasurementRecord) HasCoreReadings() bool {
	return m.Depth.Valid && m.PH.Valid && m.EC.Valid && m.PPM.Valid && m.Temperature.Valid
}

// GrowthRecord is one plant growth observation.
type GrowthRecord struct {
	Date   NullDate   `json:"Date"`
	Level  NullString `json:"Level"`
	Side   NullString `json:"Side"`
	Height NullFloat  `json:"Height (Inches)"`
	Width  NullFloat  `json:"Width (Inches)"`
	Leaf   NullFloat  `json:"Leaf (Inches)"`
}

// PlantID returns the composite plant identifier for this record.
func (g *GrowthRecord) PlantID() string {
	return PlantID(g.Level, g.Side)
}

// HarvestRecord is one harvest outcome observation.
type HarvestRecord struct {
	Date       NullDate   `json:"Date"`
	Level      NullString `json:"Level"`
	Side       NullString `json:"Side"`
	Yield      NullFloat  `json:"Yield (Grams)"`
	Roots      NullFloat  `json:"Roots (Millimeters)"`
	Brix       NullFloat  `json:"Brix"`
	BrixLine   NullString `json:"Brix Line"`
}

// PlantID returns the composite plant identifier for this record.
func (h *HarvestRecord) PlantID() string {
	return PlantID(h.Level, h.Side)
}

// PlantID derives the identifier of a physical growing slot from its level
// and side. The same derivation applies to growth and harvest records so
// matching rows share an identifier. Returns the empty string when either
// component is absent.
func PlantID(level, side NullString) string {
	if !level.Valid || !side.Valid {
		return ""
	}
	return level.String + "-" + side.String
}
