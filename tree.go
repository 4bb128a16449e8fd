package animator

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NodeSpec is the YAML form of a node and its subtree.
type NodeSpec struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Class    string            `yaml:"class"`
	Style    map[string]string `yaml:"style"`
	Children []NodeSpec        `yaml:"children"`
}

// Build creates the detached node tree described by s. Inline style names
// are normalised to camelCase.
func (s NodeSpec) Build() *Node {
	name := s.Name
	if name == "" {
		name = s.ID
	}
	n := NewNodeWithID(s.ID, name, s.Class)
	for p, v := range s.Style {
		n.SetInlineStyle(CamelCase(p), v)
	}
	for _, c := range s.Children {
		n.AddChild(c.Build())
	}
	return n
}

// LoadTree parses a YAML (or JSON) node tree and builds it.
func LoadTree(data []byte) (*Node, error) {
	var spec NodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	if err := spec.checkIDs(map[string]bool{}); err != nil {
		return nil, err
	}
	return spec.Build(), nil
}

func (s NodeSpec) checkIDs(seen map[string]bool) error {
	if s.ID != "" {
		if seen[s.ID] {
			return fmt.Errorf("parse tree: duplicate node id %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, c := range s.Children {
		if err := c.checkIDs(seen); err != nil {
			return err
		}
	}
	return nil
}
