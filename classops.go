package animator

import (
	"regexp"
	"slices"
	"strings"
)

// ClassName returns the class string n is heading to: the target of its
// newest in-flight class transition, else its current class.
func (a *Animator) ClassName(n *Node) string {
	if n == nil {
		return ""
	}
	if act := a.store.get(n.id); act != nil {
		if queue := act.props[ClassNameProperty]; len(queue) > 0 {
			return queue[len(queue)-1].to
		}
	}
	return n.className
}

// SetClassName animates the change of n's class string to className.
func (a *Animator) SetClassName(n *Node, className string, opts Options) {
	a.checkOwner("SetClassName")
	a.transition(n, className, opts)
}

// AddClassName animates adding the space separated class tokens in
// className. Tokens already present are not duplicated. An empty className
// is a no-op.
func (a *Animator) AddClassName(n *Node, className string, opts Options) {
	a.checkOwner("AddClassName")
	tokens := classTokens(className)
	if n == nil || len(tokens) == 0 {
		return
	}
	a.transition(n, addTokens(a.ClassName(n), tokens), opts)
}

// RemoveClassName animates removing every occurrence of the space separated
// class tokens in className. An empty className is a no-op.
func (a *Animator) RemoveClassName(n *Node, className string, opts Options) {
	a.checkOwner("RemoveClassName")
	if n == nil || strings.TrimSpace(className) == "" {
		return
	}
	current := a.ClassName(n)
	if current == className {
		a.transition(n, "", opts)
		return
	}
	a.transition(n, removeTokens(current, classTokens(className)), opts)
}

// ReplaceClassName animates replacing the class token oldClassName with
// newClassName. An empty oldClassName appends newClassName.
func (a *Animator) ReplaceClassName(n *Node, oldClassName, newClassName string, opts Options) {
	a.checkOwner("ReplaceClassName")
	if n == nil {
		return
	}
	current := a.ClassName(n)
	var next string
	if oldClassName == "" {
		next = strings.TrimSpace(current + " " + newClassName)
	} else {
		next = classTokenPattern(oldClassName).ReplaceAllString(current, "${1}"+newClassName+"${2}")
	}
	a.transition(n, next, opts)
}

// ToggleClassName applies opts.Add and opts.Remove to n's class string;
// reverse (or opts.Reverse) swaps them. With a zero Duration the change is
// applied immediately and the callback runs synchronously.
func (a *Animator) ToggleClassName(n *Node, opts Options, reverse bool) {
	a.checkOwner("ToggleClassName")
	if n == nil {
		return
	}
	add, remove := opts.Add, opts.Remove
	if reverse || opts.Reverse {
		add, remove = remove, add
	}
	next := addTokens(a.ClassName(n), add)
	next = removeTokens(next, remove)

	if opts.Duration > 0 {
		a.transition(n, next, opts)
		return
	}
	n.SetClassName(next)
	a.metrics.transition(outcomeImmediate)
	if opts.Callback != nil {
		opts.Callback(n, ClassNameProperty)
	}
}

func addTokens(className string, tokens []string) string {
	classes := classTokens(className)
	for _, t := range tokens {
		if t != "" && !slices.Contains(classes, t) {
			classes = append(classes, t)
		}
	}
	return strings.Join(classes, " ")
}

func removeTokens(className string, tokens []string) string {
	classes := slices.DeleteFunc(classTokens(className), func(c string) bool {
		return slices.Contains(tokens, c)
	})
	return strings.Join(classes, " ")
}

// classTokenPattern matches token as a whole class in a class string,
// capturing the surrounding separators.
func classTokenPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`(^|\s)` + regexp.QuoteMeta(token) + `(\s|$)`)
}
