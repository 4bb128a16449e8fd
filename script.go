package animator

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Script step actions.
const (
	StepAdd     = "add"
	StepRemove  = "remove"
	StepReplace = "replace"
	StepSet     = "set"
	StepToggle  = "toggle"
	StepAnimate = "animate"
	StepAdvance = "advance"
	StepAbort   = "abort"
	StepExpect  = "expect"
)

var stepActions = map[string]bool{
	StepAdd: true, StepRemove: true, StepReplace: true, StepSet: true, StepToggle: true,
	StepAnimate: true, StepAdvance: true, StepAbort: true, StepExpect: true,
}

// ScriptStep is a single action in a script.
type ScriptStep struct {
	Action string `yaml:"action"`
	// Node is the id of the node the step applies to.
	Node string `yaml:"node"`

	// Class is the class token(s) for add, remove, set and the new class
	// for replace; Old is the class replaced.
	Class string `yaml:"class"`
	Old   string `yaml:"old"`
	// Add, Remove and Reverse drive toggle.
	Add     []string `yaml:"add"`
	Remove  []string `yaml:"remove"`
	Reverse bool     `yaml:"reverse"`

	// Properties are the animate targets.
	Properties map[string]string `yaml:"properties"`
	Duration   time.Duration     `yaml:"duration"`
	Delay      time.Duration     `yaml:"delay"`
	Curve      string            `yaml:"curve"`
	Only       []string          `yaml:"only"`
	Actions    map[string]string `yaml:"actions"`

	// By is the clock advance of an advance step.
	By time.Duration `yaml:"by"`

	// Property and Value are asserted by expect.
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

// Script is the top-level structure of a script file.
type Script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// LoadScript parses a YAML (or JSON) script.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range s.Steps {
		if !stepActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: %w %q", i, ErrUnknownStep, st.Action)
		}
		if st.Curve != "" {
			if _, ok := CurveByName(st.Curve); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown curve %q", i, st.Curve)
			}
		}
		for id, name := range st.Actions {
			if _, ok := actionsByName[name]; !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown action %q for node %q", i, name, id)
			}
		}
	}
	return &s, nil
}

var actionsByName = map[string]Action{
	"morph":                 Morph,
	"morph-ignore-children": MorphIgnoreChildren,
	"ignore":                Ignore,
	"fade":                  Fade,
	"fade-in":               FadeIn,
	"fade-out":              FadeOut,
}

// TraceEntry is one observed change of a node's class or inline style.
type TraceEntry struct {
	Step     int           `json:"step"`
	Time     time.Duration `json:"time"`
	Node     string        `json:"node"`
	Property string        `json:"property"`
	Value    string        `json:"value"`
}

// Runner executes a script against a scene with its own manual clock.
type Runner struct {
	script *Script
	scene  *Scene
	clock  *ManualClock
	anim   *Animator
	last   map[string]Styles
}

// NewRunner creates a runner for script over scene. opts configure the
// runner's animator.
func NewRunner(script *Script, scene *Scene, opts ...Option) *Runner {
	clock := NewManualClock()
	return &Runner{
		script: script,
		scene:  scene,
		clock:  clock,
		anim:   New(scene, clock, opts...),
	}
}

// Animator returns the animator the runner drives.
func (r *Runner) Animator() *Animator {
	return r.anim
}

// Clock returns the runner's clock.
func (r *Runner) Clock() *ManualClock {
	return r.clock
}

// Run executes every step and returns the class and inline style changes
// observed after each one. It stops at the first failing step.
func (r *Runner) Run(ctx context.Context) ([]TraceEntry, error) {
	var trace []TraceEntry
	r.last = r.observe()
	for i, st := range r.script.Steps {
		if err := ctx.Err(); err != nil {
			return trace, err
		}
		if err := r.step(st); err != nil {
			return trace, fmt.Errorf("step %d (%s): %w", i, st.Action, err)
		}
		trace = append(trace, r.diff(i)...)
	}
	return trace, nil
}

func (r *Runner) step(st ScriptStep) error {
	if st.Action == StepAdvance {
		r.clock.Advance(st.By)
		return nil
	}
	if st.Action == StepAbort {
		r.anim.Abort()
		return nil
	}

	n := r.scene.ElementByID(st.Node)
	if n == nil {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, st.Node)
	}
	opts, err := r.options(st)
	if err != nil {
		return err
	}

	switch st.Action {
	case StepAdd:
		r.anim.AddClassName(n, st.Class, opts)
	case StepRemove:
		r.anim.RemoveClassName(n, st.Class, opts)
	case StepReplace:
		r.anim.ReplaceClassName(n, st.Old, st.Class, opts)
	case StepSet:
		r.anim.SetClassName(n, st.Class, opts)
	case StepToggle:
		opts.Add, opts.Remove = st.Add, st.Remove
		r.anim.ToggleClassName(n, opts, st.Reverse)
	case StepAnimate:
		if len(st.Properties) == 0 {
			r.anim.logger.Warn("animate step without properties ignored", "node", st.Node)
			return nil
		}
		props := make(Properties, len(st.Properties))
		for p, v := range st.Properties {
			props[CamelCase(p)] = Value(v)
		}
		r.anim.Animate(n, props, opts)
	case StepExpect:
		got := r.anim.ClassName(n)
		if st.Property != ClassNameProperty {
			got = r.scene.ComputedStyle(n, []string{st.Property})[st.Property]
		}
		if got != st.Value {
			return fmt.Errorf("%w: %s.%s = %q, want %q", ErrExpectation, st.Node, st.Property, got, st.Value)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownStep, st.Action)
	}
	return nil
}

func (r *Runner) options(st ScriptStep) (Options, error) {
	opts := Options{Duration: st.Duration, Delay: st.Delay, Only: st.Only}
	if st.Curve != "" {
		curve, ok := CurveByName(st.Curve)
		if !ok {
			return Options{}, fmt.Errorf("unknown curve %q", st.Curve)
		}
		opts.Curve = curve
	}
	if len(st.Actions) > 0 {
		opts.Actions = make(map[string]Action, len(st.Actions))
		for id, name := range st.Actions {
			action, ok := actionsByName[name]
			if !ok {
				return Options{}, fmt.Errorf("unknown action %q for node %q", name, id)
			}
			opts.Actions[id] = action
		}
	}
	return opts, nil
}

// observe returns the class and inline styles of every node in the scene.
func (r *Runner) observe() map[string]Styles {
	out := map[string]Styles{}
	r.scene.Root().Walk(func(n *Node) bool {
		s := n.Inline()
		s[ClassNameProperty] = n.className
		out[n.id] = s
		return true
	})
	return out
}

// diff records what changed since the previous observation. A removed inline
// style is reported with an empty value.
func (r *Runner) diff(step int) []TraceEntry {
	now := r.observe()
	var entries []TraceEntry
	r.scene.Root().Walk(func(n *Node) bool {
		cur, prev := now[n.id], r.last[n.id]
		keys := map[string]bool{}
		for p := range cur {
			keys[p] = true
		}
		for p := range prev {
			keys[p] = true
		}
		names := make([]string, 0, len(keys))
		for p := range keys {
			names = append(names, p)
		}
		sort.Strings(names)
		for _, p := range names {
			if cur[p] != prev[p] {
				entries = append(entries, TraceEntry{Step: step, Time: r.clock.Now(), Node: n.id, Property: p, Value: cur[p]})
			}
		}
		return true
	})
	r.last = now
	return entries
}

// Player plays a script against a clock advanced by someone else, such as a
// frame loop. Advance steps wait for the clock instead of moving it.
type Player struct {
	r         *Runner
	cursor    int
	waitUntil time.Duration
}

// Player returns a player over the runner's script and clock.
func (r *Runner) Player() *Player {
	return &Player{r: r}
}

// Poll runs every step that is due. It reports true once the script has
// finished.
func (p *Player) Poll() (bool, error) {
	steps := p.r.script.Steps
	for p.cursor < len(steps) {
		if p.r.clock.Now() < p.waitUntil {
			return false, nil
		}
		st := steps[p.cursor]
		p.cursor++
		if st.Action == StepAdvance {
			p.waitUntil = p.r.clock.Now() + st.By
			continue
		}
		if err := p.r.step(st); err != nil {
			return false, fmt.Errorf("step %d (%s): %w", p.cursor-1, st.Action, err)
		}
	}
	return p.r.clock.Now() >= p.waitUntil, nil
}
