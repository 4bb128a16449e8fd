package animator

import (
	"testing"
	"time"
)

func TestShorthandExpansion(t *testing.T) {
	a, clock, box := newTestAnimator(t, "")
	a.Animate(box, Values(map[string]string{"margin": "10px"}), Options{Duration: 100 * time.Millisecond})

	for _, side := range shorthands["margin"] {
		if !a.Animating(box, side) {
			t.Errorf("%s should be animating", side)
		}
	}
	if a.Animating(box, "margin") {
		t.Error("shorthand itself should not be animated")
	}

	clock.Advance(50 * time.Millisecond)
	for _, side := range shorthands["margin"] {
		if got := computed(a, box, side); got != "5px" {
			t.Errorf("%s at 50ms = %q, want 5px", side, got)
		}
	}
	clock.Advance(50 * time.Millisecond)
	for _, side := range shorthands["margin"] {
		if got := computed(a, box, side); got != "10px" {
			t.Errorf("%s = %q, want 10px", side, got)
		}
	}
}

func TestShorthandExplicitSideWins(t *testing.T) {
	props := normaliseProperties(Properties{
		"padding":     Value("4px"),
		"paddingLeft": Value("8px"),
	})
	if len(props) != 4 {
		t.Fatalf("len = %d, want 4", len(props))
	}
	if props["paddingLeft"].Value != "8px" || props["paddingTop"].Value != "4px" {
		t.Errorf("props = %v", props)
	}
}

func TestAnimateDelay(t *testing.T) {
	a, clock, box := newTestAnimator(t, "")
	a.Animate(box, Values(map[string]string{"width": "100px"}), Options{
		Duration: 100 * time.Millisecond,
		Delay:    50 * time.Millisecond,
	})
	if a.Active() {
		t.Fatal("delayed request should not start the scheduler yet")
	}
	clock.Advance(50 * time.Millisecond)
	if !a.Animating(box, "width") {
		t.Fatal("request should be enqueued after the delay")
	}
	clock.Advance(100 * time.Millisecond)
	if got := computed(a, box, "width"); got != "100px" {
		t.Errorf("width = %q, want 100px", got)
	}
}

func TestPerPropertyTiming(t *testing.T) {
	a, clock, box := newTestAnimator(t, ".box { height: 0px; }")
	a.Animate(box, Properties{
		"width":   {Value: "100px", Duration: 50 * time.Millisecond},
		"height":  {Value: "100px", Delay: 100 * time.Millisecond, Duration: 100 * time.Millisecond},
		"opacity": Value("0"),
	}, Options{Duration: 200 * time.Millisecond})

	clock.Advance(50 * time.Millisecond)
	if a.Animating(box, "width") {
		t.Error("width with its own duration should be done at 50ms")
	}
	if _, ok := box.InlineStyle("height"); ok {
		t.Error("delayed height should not be written before its start")
	}
	clock.Advance(100 * time.Millisecond)
	if got := computed(a, box, "height"); got != "50px" {
		t.Errorf("height at 150ms = %q, want 50px", got)
	}
	clock.Advance(50 * time.Millisecond)
	if a.ActorCount() != 0 {
		t.Error("all properties should be done at 200ms")
	}
}

func TestStartStylesHint(t *testing.T) {
	a, clock, box := newTestAnimator(t, ".box { width: 10px; }")
	a.Animate(box, Values(map[string]string{"width": "30px", "height": "20px"}), Options{
		Duration:    100 * time.Millisecond,
		StartStyles: Styles{"width": "50px"},
	})
	clock.Advance(50 * time.Millisecond)
	if got := computed(a, box, "width"); got != "40px" {
		t.Errorf("width = %q, want 40px (from hint)", got)
	}
}

func TestStepBackToZero(t *testing.T) {
	a, _, box := newTestAnimator(t, "")
	a.Animate(box, Values(map[string]string{"opacity": "1"}), Options{
		StartStyles:    Styles{"opacity": "0"},
		StepBackToZero: true,
	})
	if got, ok := box.InlineStyle("opacity"); !ok || got != "0" {
		t.Errorf("opacity = %q, %v, want 0 written synchronously", got, ok)
	}
}

func TestCleanupOptions(t *testing.T) {
	a, clock, box := newTestAnimator(t, ".box { width: 10px; }")
	a.Animate(box, Properties{
		"width":   Value("20px"),
		"opacity": {Value: "0.5", Cleanup: boolPtr(false)},
	}, Options{Duration: 50 * time.Millisecond, Cleanup: true})
	clock.Advance(50 * time.Millisecond)

	if _, ok := box.InlineStyle("width"); ok {
		t.Error("width should be cleaned up")
	}
	if got := computed(a, box, "width"); got != "10px" {
		t.Errorf("width = %q, want stylesheet value after cleanup", got)
	}
	if got, _ := box.InlineStyle("opacity"); got != "0.5" {
		t.Errorf("opacity = %q, want kept override", got)
	}
}

func TestUnknownPropertyAnimates(t *testing.T) {
	a, clock, box := newTestAnimator(t, "")
	a.Animate(box, Values(map[string]string{"fooBar": "x"}), Options{Duration: 20 * time.Millisecond})
	clock.Advance(20 * time.Millisecond)
	if got, _ := box.InlineStyle("fooBar"); got != "x" {
		t.Errorf("fooBar = %q, want x", got)
	}
}

type countingRegistry struct {
	n int
}

func (r *countingRegistry) NewStepper(n *Node, property, from, to string, params StepParams) Stepper {
	r.n++
	return DefaultSteppers.NewStepper(n, property, from, to, params)
}

func TestWithStepperRegistry(t *testing.T) {
	reg := &countingRegistry{}
	a, _, box := newTestAnimator(t, "", WithStepperRegistry(reg))
	a.Animate(box, Values(map[string]string{"padding": "1px"}), Options{})
	if reg.n != 4 {
		t.Errorf("steppers created = %d, want 4", reg.n)
	}
}

func TestDiscreteTransitionPointZeroUsesDefault(t *testing.T) {
	a, clock, box := newTestAnimator(t, ".box { display: none; }")
	a.Animate(box, Values(map[string]string{"display": "block"}), Options{Duration: 100 * time.Millisecond})
	clock.Advance(10 * time.Millisecond)
	if got := computed(a, box, "display"); got != "none" {
		t.Errorf("display at 10%% = %q, want none", got)
	}
	clock.Advance(40 * time.Millisecond)
	if got := computed(a, box, "display"); got != "block" {
		t.Errorf("display at 50%% = %q, want block", got)
	}
}

func TestDiscreteAtStart(t *testing.T) {
	a, clock, box := newTestAnimator(t, ".box { display: none; }")
	a.Animate(box, Values(map[string]string{"display": "block"}), Options{
		Duration:                100 * time.Millisecond,
		DiscreteTransitionPoint: DiscreteAtStart,
	})
	clock.Advance(10 * time.Millisecond)
	if got := computed(a, box, "display"); got != "block" {
		t.Errorf("display at first tick = %q, want block", got)
	}
}
