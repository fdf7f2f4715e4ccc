// Package convert derives measurement series from other measurement series
// with closed-form arithmetic: mean temperature from the daily extremes,
// wind speed and direction from the horizontal components, and the
// solid/liquid split of total precipitation.
//
// Like the rest of the library the conversions are unit-agnostic, except
// where a formula fixes the convention (wind direction in meteorological
// degrees, temperature thresholds in the units of the series).
package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/mfortier/climdex/series"
)

// MeanTemperature estimates daily mean temperature as the midpoint of the
// daily minimum and maximum, assuming a symmetric diurnal cycle.
func MeanTemperature(tasmin, tasmax *series.Series) (*series.Series, error) {
	return series.Combine(tasmin, tasmax, func(tn, tx float64) float64 {
		return (tn + tx) / 2
	})
}

// WindSpeedDirection computes wind speed and the meteorological
// "direction from" angle from the eastward (uas) and northward (vas)
// components. Calm winds — speed below calmThresh — get direction 0 by
// convention, while true northerlies get 360.
func WindSpeedDirection(uas, vas *series.Series, calmThresh float64) (speed, direction *series.Series, err error) {
	speed, err = series.Combine(uas, vas, math.Hypot)
	if err != nil {
		return nil, nil, err
	}

	direction, err = series.Combine(uas, vas, func(u, v float64) float64 {
		dir := math.Mod(270-math.Atan2(v, u)*180/math.Pi, 360)
		if dir < 0 {
			dir += 360
		}
		if math.Round(dir) == 0 {
			dir = 360
		}
		if math.Hypot(u, v) < calmThresh {
			dir = 0
		}

		return dir
	})
	if err != nil {
		return nil, nil, err
	}

	return speed, direction, nil
}

// WindComponents computes the eastward (uas) and northward (vas) components
// from wind speed and the meteorological "direction from" angle.
func WindComponents(speed, direction *series.Series) (uas, vas *series.Series, err error) {
	uas, err = series.Combine(speed, direction, func(ws, dir float64) float64 {
		return -ws * math.Sin(dir*math.Pi/180)
	})
	if err != nil {
		return nil, nil, err
	}

	vas, err = series.Combine(speed, direction, func(ws, dir float64) float64 {
		return -ws * math.Cos(dir*math.Pi/180)
	})
	if err != nil {
		return nil, nil, err
	}

	return uas, vas, nil
}

// PhaseMethod is the closed set of precipitation phase-partitioning methods.
type PhaseMethod uint8

// PhaseBinary assumes precipitation is entirely solid below the temperature
// threshold and entirely liquid above it.
const PhaseBinary PhaseMethod = 0x1

// ErrUnknownPhaseMethod is returned for methods outside the closed set,
// rejected before any data is touched.
var ErrUnknownPhaseMethod = errors.New("convert: unknown phase method")

// SnowfallApproximation estimates the solid fraction of total precipitation
// from a temperature series (mean, minimum or maximum — the method is
// agnostic). thresh is in the units of tas.
func SnowfallApproximation(pr, tas *series.Series, thresh float64, method PhaseMethod) (*series.Series, error) {
	if method != PhaseBinary {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPhaseMethod, method)
	}

	return series.Combine(pr, tas, func(p, t float64) float64 {
		if t < thresh {
			return p
		}

		return 0
	})
}

// RainApproximation estimates the liquid fraction of total precipitation:
// the total minus the snowfall approximation.
func RainApproximation(pr, tas *series.Series, thresh float64, method PhaseMethod) (*series.Series, error) {
	snow, err := SnowfallApproximation(pr, tas, thresh, method)
	if err != nil {
		return nil, err
	}

	return series.Combine(pr, snow, func(p, s float64) float64 { return p - s })
}
