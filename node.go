package animator

import (
	"strconv"
	"strings"
)

// --- ID counter ---

// nodeIDCounter is a plain counter; the animator is single-threaded.
var nodeIDCounter uint32

func nextNodeID() string {
	nodeIDCounter++
	return "anim_" + strconv.FormatUint(uint64(nodeIDCounter), 10)
}

// --- Node ---

// Node is an element of the styled tree. A node carries a class name that the
// scene's stylesheet matches against, and an inline style map that overrides
// the stylesheet. Animations write to the inline style; cleanup removes the
// override so that the stylesheet takes over again.
type Node struct {
	// Identity
	id   string
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node
	scene    *Scene

	className string
	inline    Styles

	// Metadata
	UserData any

	disposed bool
}

// NewNode creates a detached node with the given name and class string.
func NewNode(name, className string) *Node {
	return &Node{
		id:        nextNodeID(),
		Name:      name,
		className: className,
		inline:    Styles{},
	}
}

// NewNodeWithID creates a detached node with a caller-chosen stable id. Use
// it for trees loaded from markup, where action maps refer to nodes by id.
func NewNodeWithID(id, name, className string) *Node {
	n := NewNode(name, className)
	if id != "" {
		n.id = id
	}
	return n
}

// ID returns the node's stable identifier. The id never changes for the
// lifetime of the node and keys the animator's actor store.
func (n *Node) ID() string {
	return n.id
}

// ClassName returns the class string currently applied to the node. While a
// class transition is running this is the old class until the transition
// reaches its switch point; use Animator.ClassName for the target class.
func (n *Node) ClassName() string {
	return n.className
}

// SetClassName applies a class string immediately, without animation.
func (n *Node) SetClassName(className string) {
	n.className = className
}

// HasClass reports whether token is one of the node's class tokens.
func (n *Node) HasClass(token string) bool {
	return hasClassToken(n.className, token)
}

// --- Inline style ---

// InlineStyle returns the inline value of property and whether one is set.
func (n *Node) InlineStyle(property string) (string, bool) {
	v, ok := n.inline[property]
	return v, ok
}

// SetInlineStyle sets an inline override for property. An empty value removes
// the override.
func (n *Node) SetInlineStyle(property, value string) {
	if value == "" {
		delete(n.inline, property)
		return
	}
	if n.inline == nil {
		n.inline = Styles{}
	}
	n.inline[property] = value
}

// ClearInlineStyle removes the inline override for property.
func (n *Node) ClearInlineStyle(property string) {
	delete(n.inline, property)
}

// Inline returns a copy of the node's inline style.
func (n *Node) Inline() Styles {
	return n.inline.Clone()
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("animator: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("animator: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		if index > len(n.children) {
			index = len(n.children)
		}
	}
	if index < 0 || index > len(n.children) {
		panic("animator: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	setSubtreeScene(child, n.scene)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("animator: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	setSubtreeScene(child, nil)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("animator: child index out of range")
	}
	child := n.children[index]
	n.RemoveChild(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		setSubtreeScene(child, nil)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Walk visits n and its descendants depth-first, parents before children.
// When visit returns false the node's children are skipped.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(visit)
	}
}

// Find returns the first node in the subtree rooted at n with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Running animations on a
// disposed node are dropped on the next tick.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	setSubtreeScene(n, nil)
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.scene = nil
	n.inline = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// String returns a short description used in logs.
func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(n.id)
	if n.Name != "" {
		b.WriteString("(")
		b.WriteString(n.Name)
		b.WriteString(")")
	}
	return b.String()
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// setSubtreeScene attaches or detaches node and its descendants from a scene,
// keeping the scene's id index in sync.
func setSubtreeScene(node *Node, s *Scene) {
	node.Walk(func(c *Node) bool {
		if c.scene != nil && c.scene != s {
			c.scene.unindex(c)
		}
		c.scene = s
		if s != nil {
			s.index(c)
		}
		return true
	})
}
