package animator

// ActionKind selects how a class transition animates a node.
type ActionKind uint8

const (
	// ActionDefault picks a strategy from the node's display before and
	// after the class change, falling back to ActionMorph.
	ActionDefault ActionKind = iota
	// ActionMorph animates every measured property that changes; children
	// are visited.
	ActionMorph
	// ActionMorphIgnoreChildren is ActionMorph without visiting children.
	ActionMorphIgnoreChildren
	// ActionIgnore does not animate the node or its children.
	ActionIgnore
	// ActionFade fades the node out, swaps the class, and fades it back in.
	ActionFade
	// ActionFadeIn swaps the class, then fades the node in.
	ActionFadeIn
	// ActionFadeOut fades the node out, then swaps the class.
	ActionFadeOut
	// ActionDynamic asks Action.Resolve for the strategy.
	ActionDynamic
)

var actionKindNames = [...]string{
	ActionDefault:             "default",
	ActionMorph:               "morph",
	ActionMorphIgnoreChildren: "morph-ignore-children",
	ActionIgnore:              "ignore",
	ActionFade:                "fade",
	ActionFadeIn:              "fade-in",
	ActionFadeOut:             "fade-out",
	ActionDynamic:             "dynamic",
}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return "unknown"
}

// Action is the per-node class transition strategy. Build one with the
// package-level values and constructors rather than by hand.
type Action struct {
	Kind ActionKind
	// Overrides replace the measured target value of individual properties
	// for morph actions. Overridden properties never clean up.
	Overrides Properties
	// Resolve computes the strategy for ActionDynamic from the node's
	// measured styles before and after the class change.
	Resolve func(n *Node, before, after Styles) Action
}

// Predefined actions.
var (
	Morph               = Action{Kind: ActionMorph}
	MorphIgnoreChildren = Action{Kind: ActionMorphIgnoreChildren}
	Ignore              = Action{Kind: ActionIgnore}
	Fade                = Action{Kind: ActionFade}
	FadeIn              = Action{Kind: ActionFadeIn}
	FadeOut             = Action{Kind: ActionFadeOut}
)

// MorphWith returns a morph action with explicit per-property overrides.
func MorphWith(overrides Properties, ignoreChildren bool) Action {
	kind := ActionMorph
	if ignoreChildren {
		kind = ActionMorphIgnoreChildren
	}
	return Action{Kind: kind, Overrides: overrides}
}

// Dynamic returns an action resolved per transition by fn.
func Dynamic(fn func(n *Node, before, after Styles) Action) Action {
	return Action{Kind: ActionDynamic, Resolve: fn}
}

// measured reports whether a node with this configured action has its styles
// captured. Dynamic actions are measured because their resolver needs them.
func (a Action) measured() bool {
	switch a.Kind {
	case ActionDefault, ActionMorph, ActionMorphIgnoreChildren, ActionDynamic:
		return true
	}
	return false
}

// skipsChildren reports whether the node's subtree is left alone.
func (a Action) skipsChildren() bool {
	switch a.Kind {
	case ActionDefault, ActionMorph, ActionDynamic:
		return false
	}
	return true
}
