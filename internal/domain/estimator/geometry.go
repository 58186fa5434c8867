// Package estimator turns building dimensions into areas, chemical sets and a
// price. Every function is pure and deterministic.
package estimator

import (
	"math"
	"strconv"
	"strings"

	"foampro/internal/domain/entities"
)

// MetalSurfaceFactor is the extra sprayable area assumed for metal substrates.
const MetalSurfaceFactor = 1.15

// Areas is the output of the geometry step.
type Areas struct {
	Perimeter     float64
	SlopeFactor   float64
	BaseWallArea  float64
	GableArea     float64
	TotalWallArea float64
	BaseRoofArea  float64
	TotalRoofArea float64
}

// clamp treats NaN, infinities and negatives as 0.
func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParsePitch reads a roof pitch given as rise per 12 of run ("4" or "4/12").
// Anything unparseable yields 0.
func ParsePitch(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if rise, run, ok := strings.Cut(s, "/"); ok {
		r, err := strconv.ParseFloat(strings.TrimSpace(rise), 64)
		if err != nil {
			return 0
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(run), 64)
		if err != nil || clamp(d) == 0 {
			return 0
		}
		return clamp(r / d * 12)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return clamp(v)
}

// SlopeFactor converts a flat footprint into roof deck area for a pitch.
func SlopeFactor(pitch float64) float64 {
	p := clamp(pitch) / 12
	return math.Sqrt(1 + p*p)
}

// Geometry computes wall and roof areas for the given inputs.
//
// Building uses the full perimeter/roof geometry. Walls Only keeps the walls
// and drops the roof. Flat Area takes length*width as a flat roof-equivalent.
// Custom relies on additional areas only. Additional areas are added per tag
// and the metal factor is applied to the totals.
func Geometry(in entities.EstimateInputs) Areas {
	length := clamp(in.Length)
	width := clamp(in.Width)
	height := clamp(in.WallHeight)

	a := Areas{SlopeFactor: 1}

	switch in.Mode {
	case entities.CalculationModeWallsOnly:
		a.Perimeter = 2 * (length + width)
		a.BaseWallArea = a.Perimeter * height
	case entities.CalculationModeFlatArea:
		a.BaseRoofArea = length * width
	case entities.CalculationModeCustom:
	default:
		pitch := ParsePitch(in.RoofPitch)
		a.Perimeter = 2 * (length + width)
		a.BaseWallArea = a.Perimeter * height
		a.SlopeFactor = SlopeFactor(pitch)
		a.BaseRoofArea = length * width * a.SlopeFactor
		if in.IncludeGables {
			a.GableArea = 2 * (0.5 * width * (width / 2 * pitch / 12))
		}
	}

	a.TotalWallArea = a.BaseWallArea + a.GableArea
	a.TotalRoofArea = a.BaseRoofArea
	for _, extra := range in.AdditionalAreas {
		area := clamp(extra.Length) * clamp(extra.Width)
		if extra.Type == entities.AreaTypeRoof {
			a.TotalRoofArea += area
		} else {
			a.TotalWallArea += area
		}
	}

	if in.IsMetalSurface {
		a.TotalWallArea *= MetalSurfaceFactor
		a.TotalRoofArea *= MetalSurfaceFactor
	}
	return a
}
