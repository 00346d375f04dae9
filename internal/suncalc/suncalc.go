// Package suncalc estimates daylight duration for the growing unit's
// location. It backs the light alert when the sun dataset cannot be loaded.
package suncalc

import (
	"fmt"
	"sync"
	"time"

	"github.com/sj14/astral/pkg/astral"
)

// DayLight holds the calculated sun event times for one date.
type DayLight struct {
	Sunrise time.Time
	Sunset  time.Time
	Hours   float64 // Daylight duration in decimal hours
}

// cacheEntry holds the cached daylight data for a given date
type cacheEntry struct {
	daylight DayLight
	date     time.Time
}

// SunCalc handles caching and calculation of sun event times
type SunCalc struct {
	cache    map[string]cacheEntry
	lock     sync.RWMutex
	observer astral.Observer
}

// NewSunCalc creates a new SunCalc instance for the given coordinates.
func NewSunCalc(latitude, longitude float64) *SunCalc {
	return &SunCalc{
		cache:    make(map[string]cacheEntry),
		observer: astral.Observer{Latitude: latitude, Longitude: longitude},
	}
}

// GetDayLight returns the daylight data for a given date, using the cache
// if available.
func (sc *SunCalc) GetDayLight(date time.Time) (DayLight, error) {
	dateKey := date.Format("2006-01-02")

	sc.lock.RLock()
	entry, exists := sc.cache[dateKey]
	sc.lock.RUnlock()

	if exists && entry.date.Equal(date) {
		return entry.daylight, nil
	}

	daylight, err := sc.calculateDayLight(date)
	if err != nil {
		return DayLight{}, err
	}

	sc.lock.Lock()
	sc.cache[dateKey] = cacheEntry{daylight: daylight, date: date}
	sc.lock.Unlock()

	return daylight, nil
}

// calculateDayLight calculates sunrise, sunset and the daylight duration
// for a given date.
func (sc *SunCalc) calculateDayLight(date time.Time) (DayLight, error) {
	sunrise, err := astral.Sunrise(sc.observer, date)
	if err != nil {
		return DayLight{}, fmt.Errorf("failed to calculate sunrise: %w", err)
	}

	sunset, err := astral.Sunset(sc.observer, date)
	if err != nil {
		return DayLight{}, fmt.Errorf("failed to calculate sunset: %w", err)
	}

	return DayLight{
		Sunrise: sunrise,
		Sunset:  sunset,
		Hours:   sunset.Sub(sunrise).Hours(),
	}, nil
}

// EstimateDaylightHours returns the expected daylight duration in decimal
// hours for a given date.
func (sc *SunCalc) EstimateDaylightHours(date time.Time) (float64, error) {
	daylight, err := sc.GetDayLight(date)
	if err != nil {
		return 0, fmt.Errorf("failed to get daylight data: %w", err)
	}
	return daylight.Hours, nil
}
