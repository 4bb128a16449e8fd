package animator

import (
	"sort"
	"strings"
)

// Styles maps camelCase property names to CSS value strings.
type Styles map[string]string

// Clone returns a shallow copy of s. Cloning a nil map returns an empty map.
func (s Styles) Clone() Styles {
	out := make(Styles, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Keys returns the property names of s in sorted order.
func (s Styles) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ClassNameProperty is the pseudo-property used to animate a node's class
// string. Its stepper flips the class at the discrete transition point.
const ClassNameProperty = "classname"

// defaultStyles are the computed values of a node no rule applies to.
var defaultStyles = Styles{
	"display":           "block",
	"visibility":        "visible",
	"opacity":           "1",
	"color":             "#000000",
	"backgroundColor":   "transparent",
	"width":             "auto",
	"height":            "auto",
	"left":              "auto",
	"top":               "auto",
	"marginTop":         "0px",
	"marginRight":       "0px",
	"marginBottom":      "0px",
	"marginLeft":        "0px",
	"paddingTop":        "0px",
	"paddingRight":      "0px",
	"paddingBottom":     "0px",
	"paddingLeft":       "0px",
	"borderTopWidth":    "0px",
	"borderRightWidth":  "0px",
	"borderBottomWidth": "0px",
	"borderLeftWidth":   "0px",
	"borderTopColor":    "#000000",
	"borderRightColor":  "#000000",
	"borderBottomColor": "#000000",
	"borderLeftColor":   "#000000",
}

// inheritedProperties take the parent's computed value when no rule on the
// node itself sets them.
var inheritedProperties = map[string]bool{
	"color":      true,
	"visibility": true,
}

// shorthands lists the shorthand properties the stepper catalog does not
// understand, with their directional expansions in top, right, bottom, left
// order.
var shorthands = map[string][4]string{
	"margin":      {"marginTop", "marginRight", "marginBottom", "marginLeft"},
	"padding":     {"paddingTop", "paddingRight", "paddingBottom", "paddingLeft"},
	"borderColor": {"borderTopColor", "borderRightColor", "borderBottomColor", "borderLeftColor"},
	"borderWidth": {"borderTopWidth", "borderRightWidth", "borderBottomWidth", "borderLeftWidth"},
}

// CamelCase converts a CSS property name such as "margin-left" into the
// camelCase form used throughout the animator ("marginLeft"). Names that are
// already camelCase are returned unchanged.
func CamelCase(property string) string {
	property = strings.TrimSpace(property)
	if !strings.Contains(property, "-") {
		return property
	}
	parts := strings.Split(strings.ToLower(property), "-")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 || b.Len() == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// expandBoxValues maps a 1-4 value CSS box shorthand onto its four sides using
// the usual top/right/bottom/left rules.
func expandBoxValues(value string) [4]string {
	f := strings.Fields(value)
	switch len(f) {
	case 0:
		return [4]string{}
	case 1:
		return [4]string{f[0], f[0], f[0], f[0]}
	case 2:
		return [4]string{f[0], f[1], f[0], f[1]}
	case 3:
		return [4]string{f[0], f[1], f[2], f[1]}
	default:
		return [4]string{f[0], f[1], f[2], f[3]}
	}
}

// --- Class tokens ---

func classTokens(className string) []string {
	return strings.Fields(className)
}

func hasClassToken(className, token string) bool {
	for _, t := range strings.Fields(className) {
		if t == token {
			return true
		}
	}
	return false
}
