package animator

import "log/slog"

// Scene is the top-level object that owns the node tree and the stylesheet.
// Only nodes attached to a scene's tree are considered visible; class
// transitions on detached nodes are applied without animation.
type Scene struct {
	root       *Node
	stylesheet *Stylesheet
	byID       map[string]*Node
	debug      bool
	logger     *slog.Logger
}

// NewScene creates a new scene with a pre-created root node.
func NewScene(stylesheet *Stylesheet) *Scene {
	if stylesheet == nil {
		stylesheet = &Stylesheet{}
	}
	s := &Scene{
		stylesheet: stylesheet,
		byID:       map[string]*Node{},
	}
	s.root = NewNode("root", "")
	setSubtreeScene(s.root, s)
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Stylesheet returns the scene's stylesheet.
func (s *Scene) Stylesheet() *Stylesheet {
	return s.stylesheet
}

// SetStylesheet replaces the stylesheet. Running animations keep their
// captured start and end values.
func (s *Scene) SetStylesheet(ss *Stylesheet) {
	if ss == nil {
		ss = &Stylesheet{}
	}
	s.stylesheet = ss
}

// ElementByID returns the attached node with the given id, or nil.
func (s *Scene) ElementByID(id string) *Node {
	n := s.byID[id]
	if n == nil || n.disposed {
		return nil
	}
	return n
}

// Contains reports whether n is attached to this scene's tree.
func (s *Scene) Contains(n *Node) bool {
	return n != nil && !n.disposed && n.scene == s && s.byID[n.id] == n
}

// SetLogger sets the logger debug mode warnings are written to. A nil logger
// restores the process default.
func (s *Scene) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *Scene) log() *slog.Logger {
	if s == nil || s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree depth and child count warnings are printed.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// Properties returns every property a computed style read without an
// explicit list reports: the built-in defaults plus anything the stylesheet
// declares.
func (s *Scene) Properties() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range defaultStyles.Keys() {
		seen[p] = true
		out = append(out, p)
	}
	for _, p := range s.stylesheet.declared() {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// ComputedStyle returns a snapshot of the computed values of props for n.
// An empty props list reads every known property. The pseudo-property
// "classname" reads the node's class string.
func (s *Scene) ComputedStyle(n *Node, props []string) Styles {
	if len(props) == 0 {
		props = s.Properties()
	}
	own := s.stylesheet.cascade(n)
	out := make(Styles, len(props))
	for _, p := range props {
		if p == ClassNameProperty {
			out[p] = n.className
			continue
		}
		out[p] = s.resolve(n, p, own)
	}
	return out
}

// resolve computes a single property. own is the cascaded declaration of n.
func (s *Scene) resolve(n *Node, p string, own Styles) string {
	if v, ok := n.inline[p]; ok {
		return v
	}
	if v, ok := own[p]; ok && v != "inherit" {
		return v
	}
	if inheritedProperties[p] || own[p] == "inherit" {
		if n.Parent != nil {
			return s.resolve(n.Parent, p, s.stylesheet.cascade(n.Parent))
		}
	}
	return defaultStyles[p]
}

func (s *Scene) index(n *Node) {
	s.byID[n.id] = n
}

func (s *Scene) unindex(n *Node) {
	if s.byID[n.id] == n {
		delete(s.byID, n.id)
	}
}
