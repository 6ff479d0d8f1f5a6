package vdom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts a VNode tree into an x/net/html node tree.
// Event handlers are not represented.
func ToHTMLNode(v *VNode) *html.Node {
	if v == nil {
		return nil
	}
	if v.Tag == "#text" {
		return &html.Node{Type: html.TextNode, Data: v.Content}
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     v.Tag,
		DataAtom: atom.Lookup([]byte(v.Tag)),
	}

	keys := make([]string, 0, len(v.Attributes))
	for k := range v.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch val := v.Attributes[k].(type) {
		case bool:
			if val {
				n.Attr = append(n.Attr, html.Attribute{Key: k})
			}
		case func(), func(any):
			// handlers are runtime-only
		default:
			n.Attr = append(n.Attr, html.Attribute{Key: k, Val: fmt.Sprint(val)})
		}
	}

	if v.Content != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: v.Content})
	}
	for _, child := range v.Children {
		if c := ToHTMLNode(child); c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// WriteHTML serializes the VNode tree as HTML.
func WriteHTML(w io.Writer, v *VNode) error {
	n := ToHTMLNode(v)
	if n == nil {
		return nil
	}
	return html.Render(w, n)
}

// HTML returns the serialized HTML for v, or an empty string for nil.
func HTML(v *VNode) string {
	var sb strings.Builder
	if err := WriteHTML(&sb, v); err != nil {
		return ""
	}
	return sb.String()
}
