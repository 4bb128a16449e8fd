package animator

import "testing"

func TestParseStylesheetCamelCaseAndShorthand(t *testing.T) {
	ss := MustParseStylesheet(`
		.box { background-color: #ff0000; margin: 1px 2px; }
	`)
	if ss.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ss.Len())
	}
	n := NewNode("n", "box")
	got := ss.cascade(n)
	want := Styles{
		"backgroundColor": "#ff0000",
		"marginTop":       "1px",
		"marginRight":     "2px",
		"marginBottom":    "1px",
		"marginLeft":      "2px",
	}
	for p, v := range want {
		if got[p] != v {
			t.Errorf("%s = %q, want %q", p, got[p], v)
		}
	}
	if _, ok := got["margin"]; ok {
		t.Error("shorthand should not survive expansion")
	}
}

func TestParseStylesheetSelectorList(t *testing.T) {
	ss := MustParseStylesheet(`.a, .b { opacity: 0.5; }`)
	if ss.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ss.Len())
	}
	if got := ss.cascade(NewNode("n", "b"))["opacity"]; got != "0.5" {
		t.Errorf("opacity = %q, want 0.5", got)
	}
}

func TestParseStylesheetIgnoresAtRules(t *testing.T) {
	ss := MustParseStylesheet(`
		@media screen { .a { opacity: 0; } }
		.a { opacity: 1; }
	`)
	if got := ss.cascade(NewNode("n", "a"))["opacity"]; got != "1" {
		t.Errorf("opacity = %q, want 1", got)
	}
}

func TestParseStylesheetUnsupportedSelector(t *testing.T) {
	if _, err := ParseStylesheet(`div > .a { opacity: 0; }`); err == nil {
		t.Error("expected error for unsupported selector")
	}
}

func TestCascadeSpecificity(t *testing.T) {
	ss := MustParseStylesheet(`
		.box.active { width: 30px; }
		#hero { width: 40px; }
		.box { width: 10px; }
		* { width: 5px; }
	`)
	tests := []struct {
		id, class string
		want      string
	}{
		{"plain", "", "5px"},
		{"b", "box", "10px"},
		{"ba", "box active", "30px"},
		{"hero", "box active", "40px"},
	}
	for _, tt := range tests {
		n := NewNodeWithID(tt.id, tt.id, tt.class)
		if got := ss.cascade(n)["width"]; got != tt.want {
			t.Errorf("%s.%s width = %q, want %q", tt.id, tt.class, got, tt.want)
		}
	}
}

func TestCascadeSourceOrder(t *testing.T) {
	ss := MustParseStylesheet(`
		.a { color: #111111; }
		.a { color: #222222; }
	`)
	if got := ss.cascade(NewNode("n", "a"))["color"]; got != "#222222" {
		t.Errorf("color = %q, want later rule", got)
	}
}

func TestDescendantSelector(t *testing.T) {
	ss := MustParseStylesheet(`.open .badge { display: block; } .badge { display: none; }`)
	parent := NewNode("p", "card")
	grand := NewNode("g", "")
	badge := NewNode("b", "badge")
	parent.AddChild(grand)
	grand.AddChild(badge)

	if got := ss.cascade(badge)["display"]; got != "none" {
		t.Errorf("closed display = %q, want none", got)
	}
	parent.SetClassName("card open")
	if got := ss.cascade(badge)["display"]; got != "block" {
		t.Errorf("open display = %q, want block", got)
	}
}

func TestAddRule(t *testing.T) {
	ss := &Stylesheet{}
	if err := ss.AddRule(".x", Styles{"padding": "4px", "border-top-color": "red"}); err != nil {
		t.Fatalf("AddRule: %v", err)
	}
	got := ss.cascade(NewNode("n", "x"))
	if got["paddingLeft"] != "4px" || got["borderTopColor"] != "red" {
		t.Errorf("cascade = %v", got)
	}
	if err := ss.AddRule("", Styles{}); err == nil {
		t.Error("expected error for empty selector")
	}
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"margin-left":      "marginLeft",
		"border-top-color": "borderTopColor",
		"opacity":          "opacity",
		"backgroundColor":  "backgroundColor",
	}
	for in, want := range tests {
		if got := CamelCase(in); got != want {
			t.Errorf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandBoxValues(t *testing.T) {
	tests := []struct {
		in   string
		want [4]string
	}{
		{"1px", [4]string{"1px", "1px", "1px", "1px"}},
		{"1px 2px", [4]string{"1px", "2px", "1px", "2px"}},
		{"1px 2px 3px", [4]string{"1px", "2px", "3px", "2px"}},
		{"1px 2px 3px 4px", [4]string{"1px", "2px", "3px", "4px"}},
	}
	for _, tt := range tests {
		if got := expandBoxValues(tt.in); got != tt.want {
			t.Errorf("expandBoxValues(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
