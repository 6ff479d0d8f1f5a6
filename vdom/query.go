package vdom

import "strings"

// Walk visits n and its descendants depth-first, stopping early when fn returns false.
func Walk(n *VNode, fn func(*VNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// TextContent concatenates the content of n and all descendants, separated by spaces.
func (v *VNode) TextContent() string {
	var parts []string
	Walk(v, func(n *VNode) bool {
		if n.Content != "" {
			parts = append(parts, n.Content)
		}
		return true
	})
	return strings.Join(parts, " ")
}

// FindText returns the first node whose own content contains text,
// compared case-insensitively.
func (v *VNode) FindText(text string) *VNode {
	needle := strings.ToLower(text)
	var found *VNode
	Walk(v, func(n *VNode) bool {
		if strings.Contains(strings.ToLower(n.Content), needle) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindTag returns the first node with the given tag.
func (v *VNode) FindTag(tag string) *VNode {
	var found *VNode
	Walk(v, func(n *VNode) bool {
		if n.Tag == tag {
			found = n
			return false
		}
		return true
	})
	return found
}
