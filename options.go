package animator

import "time"

// Callback is invoked when an animation completes. property is the property
// whose segment finished; class transitions report ClassNameProperty.
type Callback func(n *Node, property string)

// PropertyRequest describes the animation of one property. Zero fields fall
// back to the shared Options of the request.
type PropertyRequest struct {
	Value    string
	Duration time.Duration
	Delay    time.Duration
	Curve    Curve
	// DiscreteTransitionPoint of zero uses Options.DiscreteTransitionPoint.
	// Use DiscreteAtStart to switch on the first tick.
	DiscreteTransitionPoint float64
	// Cleanup overrides Options.Cleanup when non-nil.
	Cleanup  *bool
	Callback Callback
}

// Value is shorthand for a request that only sets the target value.
func Value(v string) PropertyRequest {
	return PropertyRequest{Value: v}
}

// Properties maps property names to requests.
type Properties map[string]PropertyRequest

// Values builds Properties from bare target values.
func Values(values map[string]string) Properties {
	props := make(Properties, len(values))
	for k, v := range values {
		props[k] = Value(v)
	}
	return props
}

// Clone returns a shallow copy of p.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Options are shared by every property of an animation request and control
// class transitions.
type Options struct {
	// Duration of the animation. Zero uses the configured default (500ms)
	// except for ToggleClassName, where zero applies the change immediately.
	Duration time.Duration
	// Delay defers the whole request once.
	Delay time.Duration
	// Curve eases every property without its own curve. Nil is linear.
	Curve Curve
	// DiscreteTransitionPoint is the fraction at which non-interpolable
	// values switch. Zero uses the configured default (0.5);
	// DiscreteAtStart switches on the first tick.
	DiscreteTransitionPoint float64
	// Cleanup removes inline overrides once a property's animation ends.
	Cleanup bool
	// Callback runs once the node has no animations left (Animate) or once
	// the class transition completes (class operations).
	Callback Callback

	// Actions maps node ids to the class transition strategy for that node.
	Actions map[string]Action
	// Only restricts style measurement to these properties.
	Only []string
	// Setup may rewrite the options and target class before measurement.
	Setup func(n *Node, opts Options, className string) (Options, string)

	// Add and Remove are the class tokens ToggleClassName applies.
	Add    []string
	Remove []string
	// Reverse swaps Add and Remove.
	Reverse bool

	// StartStyles supplies starting values; missing properties are read
	// from the computed style.
	StartStyles Styles
	// StepBackToZero evaluates each new stepper at fraction 0 immediately.
	StepBackToZero bool
}

// DiscreteAtStart is a discrete transition point that switches
// non-interpolable values on the first tick of their segment. A point of
// zero cannot express this because zero means "use the default".
const DiscreteAtStart = 1e-9

func boolPtr(b bool) *bool {
	return &b
}
