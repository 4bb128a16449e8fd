package animator

import (
	fease "github.com/fogleman/ease"
	"github.com/tanema/gween/ease"
)

// Curve maps elapsed time to progress. It uses gween's easing signature:
// t is the elapsed time, b the begin value, c the change and d the duration.
// A nil Curve is linear.
type Curve = ease.TweenFunc

// LinearCompleteAndReverse runs linearly to completion over the first half of
// the duration and back to the start over the second half. Fades use it so a
// class swap at the midpoint happens while the node is fully transparent.
func LinearCompleteAndReverse(t, b, c, d float32) float32 {
	if d <= 0 {
		return b
	}
	p := t / d
	if p <= 0.5 {
		return b + c*p*2
	}
	return b + c*(2-p*2)
}

// FromEase adapts a normalized easing function (progress in, progress out),
// such as those in github.com/fogleman/ease, to a Curve.
func FromEase(fn func(float64) float64) Curve {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(fn(float64(t/d)))
	}
}

var namedCurves = map[string]Curve{
	"linear":             ease.Linear,
	"inQuad":             ease.InQuad,
	"outQuad":            ease.OutQuad,
	"inOutQuad":          ease.InOutQuad,
	"inCubic":            ease.InCubic,
	"outCubic":           ease.OutCubic,
	"inOutCubic":         ease.InOutCubic,
	"inSine":             ease.InSine,
	"outSine":            ease.OutSine,
	"inOutSine":          ease.InOutSine,
	"outBounce":          ease.OutBounce,
	"outElastic":         ease.OutElastic,
	"outBack":            ease.OutBack,
	"smooth":             FromEase(fease.InOutQuad),
	"completeAndReverse": LinearCompleteAndReverse,
}

// CurveByName returns the named curve. An empty name returns nil (linear).
func CurveByName(name string) (Curve, bool) {
	if name == "" {
		return nil, true
	}
	c, ok := namedCurves[name]
	return c, ok
}

// progress applies curve to a normalized fraction.
func progress(curve Curve, fraction float64) float64 {
	if curve == nil {
		return fraction
	}
	return float64(curve(float32(fraction), 0, 1, 1))
}
