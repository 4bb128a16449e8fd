package animator

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Stepper interpolates one property of one node between two values.
// Step receives the elapsed fraction of the animation in [0, 1]; the stepper
// applies its easing curve and writes the resulting value to the node.
type Stepper interface {
	Step(fraction float64)
	// Cleanup removes whatever the stepper left behind so that the
	// stylesheet governs the property again.
	Cleanup()
}

// StepParams carries the per-segment timing shape a stepper is bound to.
type StepParams struct {
	Curve                   Curve
	DiscreteTransitionPoint float64
}

// StepperRegistry creates steppers for a property. Implementations must not
// reject unknown properties; an unknown property should still produce a
// stepper, typically a discrete one.
type StepperRegistry interface {
	NewStepper(n *Node, property, from, to string, params StepParams) Stepper
}

// StepperFunc adapts a function to the StepperRegistry interface.
type StepperFunc func(n *Node, property, from, to string, params StepParams) Stepper

// NewStepper calls f.
func (f StepperFunc) NewStepper(n *Node, property, from, to string, params StepParams) Stepper {
	return f(n, property, from, to, params)
}

// DefaultSteppers picks a stepper by value shape: numbers and lengths with
// compatible units are tweened, colours are blended, and everything else
// switches discretely at the transition point.
var DefaultSteppers StepperRegistry = StepperFunc(newDefaultStepper)

func newDefaultStepper(n *Node, property, from, to string, params StepParams) Stepper {
	base := styleStepper{node: n, property: property, from: from, to: to, params: params}
	if property == ClassNameProperty {
		return &classNameStepper{base}
	}
	if fv, fu, ok := parseLength(from); ok {
		if tv, tu, ok := parseLength(to); ok {
			if unit, ok := compatibleUnits(fv, fu, tv, tu); ok {
				return newNumberStepper(base, fv, tv, unit)
			}
		}
	}
	if fc, ok := parseColor(from); ok {
		if tc, ok := parseColor(to); ok {
			return &colorStepper{styleStepper: base, fromColor: fc, toColor: tc}
		}
	}
	return &discreteStepper{base}
}

// --- Base ---

type styleStepper struct {
	node     *Node
	property string
	from, to string
	params   StepParams
}

func (s *styleStepper) write(value string) {
	if s.node == nil || s.node.disposed {
		return
	}
	s.node.SetInlineStyle(s.property, value)
}

func (s *styleStepper) Cleanup() {
	if s.node == nil {
		return
	}
	s.node.ClearInlineStyle(s.property)
}

// endpoint reports whether fraction lands exactly on a boundary value and
// which string to write for it. Writing the original strings at the
// boundaries keeps values byte-identical to what the stylesheet reports.
func (s *styleStepper) endpoint(fraction float64) (string, bool) {
	if fraction <= 0 {
		return s.from, true
	}
	if fraction >= 1 {
		switch p := progress(s.params.Curve, 1); {
		case p == 1:
			return s.to, true
		case p == 0:
			return s.from, true
		}
	}
	return "", false
}

// --- Discrete ---

type discreteStepper struct {
	styleStepper
}

func (s *discreteStepper) Step(fraction float64) {
	if progress(s.params.Curve, fraction) >= s.params.DiscreteTransitionPoint && fraction > 0 {
		s.write(s.to)
		return
	}
	s.write(s.from)
}

// --- Class name ---

// classNameStepper swaps the class string at the transition point. It
// ignores the easing curve so the final class is always the target class.
type classNameStepper struct {
	styleStepper
}

func (s *classNameStepper) Step(fraction float64) {
	if s.node == nil || s.node.disposed {
		return
	}
	if fraction >= 1 || (fraction > 0 && fraction >= s.params.DiscreteTransitionPoint) {
		s.node.className = s.to
		return
	}
	s.node.className = s.from
}

func (s *classNameStepper) Cleanup() {}

// --- Numbers and lengths ---

type numberStepper struct {
	styleStepper
	tween *gween.Tween
	unit  string
	start float64
	end   float64
}

func newNumberStepper(base styleStepper, from, to float64, unit string) *numberStepper {
	curve := base.params.Curve
	if curve == nil {
		curve = ease.Linear
	}
	return &numberStepper{
		styleStepper: base,
		tween:        gween.New(float32(from), float32(to), 1, curve),
		unit:         unit,
		start:        from,
		end:          to,
	}
}

func (s *numberStepper) Step(fraction float64) {
	if v, ok := s.endpoint(fraction); ok {
		s.write(v)
		return
	}
	var v float64
	if fraction >= 1 {
		v = s.start + (s.end-s.start)*progress(s.params.Curve, 1)
	} else {
		cur, _ := s.tween.Set(float32(fraction))
		v = float64(cur)
	}
	s.write(formatLength(v, s.unit))
}

var lengthPattern = regexp.MustCompile(`^(-?(?:\d+\.?\d*|\.\d+))([a-zA-Z%]*)$`)

func parseLength(value string) (float64, string, bool) {
	m := lengthPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return v, strings.ToLower(m[2]), true
}

// compatibleUnits returns the unit to interpolate in. A unitless zero takes
// the other side's unit.
func compatibleUnits(fv float64, fu string, tv float64, tu string) (string, bool) {
	switch {
	case fu == tu:
		return fu, true
	case fu == "" && fv == 0:
		return tu, true
	case tu == "" && tv == 0:
		return fu, true
	}
	return "", false
}

func formatLength(v float64, unit string) string {
	if math.Abs(v) < 1e-6 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 32) + unit
}

// --- Colours ---

type rgba struct {
	c colorful.Color
	a float64
}

type colorStepper struct {
	styleStepper
	fromColor rgba
	toColor   rgba
}

func (s *colorStepper) Step(fraction float64) {
	if v, ok := s.endpoint(fraction); ok {
		s.write(v)
		return
	}
	p := progress(s.params.Curve, fraction)
	c := s.fromColor.c.BlendRgb(s.toColor.c, p).Clamped()
	a := s.fromColor.a + (s.toColor.a-s.fromColor.a)*p
	s.write(formatColor(rgba{c: c, a: a}))
}

var namedColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
	"red":   "#ff0000",
	"green": "#008000",
	"blue":  "#0000ff",
	"gray":  "#808080",
	"grey":  "#808080",
}

var rgbPattern = regexp.MustCompile(`^rgba?\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*(?:,\s*([\d.]+)\s*)?\)$`)

func parseColor(value string) (rgba, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "transparent" {
		return rgba{a: 0}, true
	}
	if hex, ok := namedColors[v]; ok {
		v = hex
	}
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return rgba{}, false
		}
		return rgba{c: c, a: 1}, true
	}
	m := rgbPattern.FindStringSubmatch(v)
	if m == nil {
		return rgba{}, false
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return rgba{}, false
		}
		ch[i] = f / 255
	}
	a := 1.0
	if m[4] != "" {
		f, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return rgba{}, false
		}
		a = f
	}
	return rgba{c: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, a: a}, true
}

func formatColor(c rgba) string {
	if c.a >= 1 {
		return c.c.Hex()
	}
	r, g, b := c.c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.a, 'f', 3, 64))
}

// ParseColor parses a CSS colour value (hex, rgb(), rgba(), transparent or a
// basic colour name) for hosts that draw nodes.
func ParseColor(value string) (color.NRGBA, bool) {
	c, ok := parseColor(value)
	if !ok {
		return color.NRGBA{}, false
	}
	r, g, b := c.c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(1, c.a)) * 255))}, true
}
