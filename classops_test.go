package animator

import (
	"testing"
	"time"
)

func TestClassNameReportsTarget(t *testing.T) {
	a, clock, box := newTestAnimator(t, morphCSS)
	if got := a.ClassName(box); got != "box" {
		t.Errorf("ClassName idle = %q, want box", got)
	}
	a.AddClassName(box, "wide", Options{Duration: 100 * time.Millisecond})
	a.AddClassName(box, "tall", Options{Duration: 100 * time.Millisecond})
	if got := a.ClassName(box); got != "box wide tall" {
		t.Errorf("ClassName in flight = %q, want box wide tall", got)
	}
	clock.Advance(time.Second)
	if got := box.ClassName(); got != "box wide tall" {
		t.Errorf("final class = %q, want box wide tall", got)
	}
	if got := a.ClassName(nil); got != "" {
		t.Errorf("ClassName(nil) = %q", got)
	}
}

func TestAddClassName(t *testing.T) {
	tests := []struct {
		name    string
		current string
		add     string
		want    string
	}{
		{"append", "box", "wide", "box wide"},
		{"several", "box", "wide  tall", "box wide tall"},
		{"no duplicate", "box wide", "wide", "box wide"},
		{"to empty", "", "wide", "wide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestAnimator(t, "")
			n := NewNode("loose", tt.current)
			a.AddClassName(n, tt.add, Options{})
			if got := n.ClassName(); got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmptyClassNameIsNoOp(t *testing.T) {
	a, _, box := newTestAnimator(t, morphCSS)
	called := false
	cb := func(*Node, string) { called = true }
	a.AddClassName(box, "", Options{Callback: cb})
	a.AddClassName(box, "   ", Options{Callback: cb})
	a.RemoveClassName(box, "", Options{Callback: cb})
	if a.Active() || called {
		t.Error("empty class operations should do nothing")
	}
	if box.ClassName() != "box" {
		t.Errorf("class = %q, want box", box.ClassName())
	}
}

func TestRemoveClassName(t *testing.T) {
	tests := []struct {
		name    string
		current string
		remove  string
		want    string
	}{
		{"single", "box wide", "wide", "box"},
		{"every occurrence", "wide box wide", "wide", "box"},
		{"several", "box wide tall", "tall wide", "box"},
		{"whole string", "box wide", "box wide", ""},
		{"absent", "box", "wide", "box"},
		{"no partial match", "boxes", "box", "boxes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestAnimator(t, "")
			n := NewNode("loose", tt.current)
			a.RemoveClassName(n, tt.remove, Options{})
			if got := n.ClassName(); got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplaceClassName(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		old, new string
		want     string
	}{
		{"middle", "a b c", "b", "x", "a x c"},
		{"first", "a b", "a", "x", "x b"},
		{"last", "a b", "b", "x", "a x"},
		{"whole token only", "ab b", "b", "x", "ab x"},
		{"absent", "a", "b", "x", "a"},
		{"empty old appends", "a", "", "x", "a x"},
		{"empty old on empty", "", "", "x", "x"},
		{"meta characters", "a.b c", "a.b", "x", "x c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestAnimator(t, "")
			n := NewNode("loose", tt.current)
			a.ReplaceClassName(n, tt.old, tt.new, Options{})
			if got := n.ClassName(); got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToggleClassNameImmediate(t *testing.T) {
	a, _, box := newTestAnimator(t, morphCSS)
	var calls int
	opts := Options{
		Add:      []string{"wide"},
		Remove:   []string{"box"},
		Callback: func(n *Node, p string) { calls++ },
	}
	a.ToggleClassName(box, opts, false)
	if box.ClassName() != "wide" {
		t.Errorf("class = %q, want wide", box.ClassName())
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if a.Active() {
		t.Error("zero duration toggle should not animate")
	}

	a.ToggleClassName(box, opts, true)
	if box.ClassName() != "box" {
		t.Errorf("reversed class = %q, want box", box.ClassName())
	}
}

func TestToggleClassNameReverseOption(t *testing.T) {
	a, _, _ := newTestAnimator(t, "")
	n := NewNode("loose", "on")
	a.ToggleClassName(n, Options{Add: []string{"on"}, Remove: []string{"off"}, Reverse: true}, false)
	if n.ClassName() != "off" {
		t.Errorf("class = %q, want off", n.ClassName())
	}
}

func TestToggleClassNameAnimated(t *testing.T) {
	a, clock, box := newTestAnimator(t, morphCSS)
	a.ToggleClassName(box, Options{Add: []string{"wide"}, Duration: 100 * time.Millisecond}, false)
	if !a.Animating(box, "width") {
		t.Fatal("toggle with a duration should animate")
	}
	clock.Advance(100 * time.Millisecond)
	if got := computed(a, box, "width"); got != "200px" {
		t.Errorf("width = %q, want 200px", got)
	}
}

func TestClassTokenHelpers(t *testing.T) {
	if got := addTokens("a  b", []string{"", "c", "a"}); got != "a b c" {
		t.Errorf("addTokens = %q", got)
	}
	if got := removeTokens("a b a c", []string{"a"}); got != "b c" {
		t.Errorf("removeTokens = %q", got)
	}
	re := classTokenPattern("b")
	if !re.MatchString("a b") || re.MatchString("ab") {
		t.Error("classTokenPattern should match whole tokens only")
	}
}
