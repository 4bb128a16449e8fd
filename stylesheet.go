package animator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Stylesheet is an ordered list of style rules. Computed styles are resolved
// by applying every matching rule in (specificity, source order) order.
type Stylesheet struct {
	rules      []styleRule
	properties map[string]bool
}

type styleRule struct {
	selector    selector
	declaration Styles
	order       int
}

// selector is a descendant chain of compound selectors. The last compound
// must match the node itself; the others must match ancestors in order.
type selector struct {
	text      string
	compounds []compound
}

type compound struct {
	universal bool
	id        string
	classes   []string
}

// ParseStylesheet parses CSS text. Only qualified rules are used; at-rules
// such as @media are ignored. Declarations marked !important are treated as
// normal declarations.
func ParseStylesheet(text string) (*Stylesheet, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet: %w", err)
	}
	ss := &Stylesheet{properties: map[string]bool{}}
	for _, rule := range parsed.Rules {
		if rule.Kind != css.QualifiedRule {
			continue
		}
		decl := Styles{}
		for _, d := range rule.Declarations {
			setDeclaration(decl, CamelCase(d.Property), strings.TrimSpace(d.Value))
		}
		for _, text := range rule.Selectors {
			sel, err := parseSelector(text)
			if err != nil {
				return nil, fmt.Errorf("parse stylesheet: %w", err)
			}
			ss.add(sel, decl)
		}
	}
	return ss, nil
}

// MustParseStylesheet is like ParseStylesheet but panics on error. Intended
// for stylesheets embedded in code and tests.
func MustParseStylesheet(text string) *Stylesheet {
	ss, err := ParseStylesheet(text)
	if err != nil {
		panic("animator: " + err.Error())
	}
	return ss
}

// AddRule appends a rule built from a selector and a camelCase declaration.
func (ss *Stylesheet) AddRule(selectorText string, decl Styles) error {
	sel, err := parseSelector(selectorText)
	if err != nil {
		return err
	}
	expanded := Styles{}
	for k, v := range decl {
		setDeclaration(expanded, CamelCase(k), v)
	}
	ss.add(sel, expanded)
	return nil
}

func (ss *Stylesheet) add(sel selector, decl Styles) {
	if ss.properties == nil {
		ss.properties = map[string]bool{}
	}
	for p := range decl {
		ss.properties[p] = true
	}
	ss.rules = append(ss.rules, styleRule{selector: sel, declaration: decl, order: len(ss.rules)})
}

// Len returns the number of rules.
func (ss *Stylesheet) Len() int {
	if ss == nil {
		return 0
	}
	return len(ss.rules)
}

// declared returns every property any rule declares.
func (ss *Stylesheet) declared() []string {
	if ss == nil {
		return nil
	}
	out := make([]string, 0, len(ss.properties))
	for p := range ss.properties {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// cascade returns the declarations that apply to n, most specific last.
func (ss *Stylesheet) cascade(n *Node) Styles {
	out := Styles{}
	if ss == nil {
		return out
	}
	var matched []styleRule
	for _, r := range ss.rules {
		if r.selector.matches(n) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		si, sj := matched[i].selector.specificity(), matched[j].selector.specificity()
		if si != sj {
			return si < sj
		}
		return matched[i].order < matched[j].order
	})
	for _, r := range matched {
		for k, v := range r.declaration {
			out[k] = v
		}
	}
	return out
}

func setDeclaration(decl Styles, property, value string) {
	if sides, ok := shorthands[property]; ok {
		values := expandBoxValues(value)
		for i, side := range sides {
			if values[i] != "" {
				decl[side] = values[i]
			}
		}
		return
	}
	decl[property] = value
}

// --- Selectors ---

func parseSelector(text string) (selector, error) {
	sel := selector{text: strings.TrimSpace(text)}
	for _, part := range strings.Fields(text) {
		c, err := parseCompound(part)
		if err != nil {
			return selector{}, fmt.Errorf("selector %q: %w", text, err)
		}
		sel.compounds = append(sel.compounds, c)
	}
	if len(sel.compounds) == 0 {
		return selector{}, fmt.Errorf("selector %q: empty", text)
	}
	return sel, nil
}

func parseCompound(part string) (compound, error) {
	var c compound
	if part == "*" {
		c.universal = true
		return c, nil
	}
	i := 0
	for i < len(part) {
		kind := part[i]
		if kind != '.' && kind != '#' {
			return compound{}, fmt.Errorf("unsupported token %q", part[i:])
		}
		j := i + 1
		for j < len(part) && part[j] != '.' && part[j] != '#' {
			j++
		}
		name := part[i+1 : j]
		if name == "" {
			return compound{}, fmt.Errorf("empty name in %q", part)
		}
		if kind == '.' {
			c.classes = append(c.classes, name)
		} else {
			c.id = name
		}
		i = j
	}
	return c, nil
}

func (c compound) matches(n *Node) bool {
	if c.universal {
		return true
	}
	if c.id != "" && c.id != n.id {
		return false
	}
	for _, cls := range c.classes {
		if !n.HasClass(cls) {
			return false
		}
	}
	return true
}

func (s selector) matches(n *Node) bool {
	last := len(s.compounds) - 1
	if !s.compounds[last].matches(n) {
		return false
	}
	i := last - 1
	for p := n.Parent; p != nil && i >= 0; p = p.Parent {
		if s.compounds[i].matches(p) {
			i--
		}
	}
	return i < 0
}

// specificity packs (ids, classes) into a single comparable value.
func (s selector) specificity() int {
	ids, classes := 0, 0
	for _, c := range s.compounds {
		if c.id != "" {
			ids++
		}
		classes += len(c.classes)
	}
	return ids*1000 + classes
}
