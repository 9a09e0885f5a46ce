// Implements the SVG element tree : shapes producing their
// geometry as svgpath.Path, grouping constructs, and
// paint servers resolving fill and stroke colors.
// Painting itself is delegated to a svgdraw.Renderer,
// see for example svgshapes/svgraster or svgshapes/svgpdf.
package svgtree

import (
	"strings"

	"github.com/benoitkugler/svgshapes/svgdraw"
)

// Node is an element of the tree.
type Node interface {
	// Base gives access to the attributes and children of the node.
	Base() *NodeBase
	// TagName returns the SVG name of the element, such as "polygon".
	TagName() string
	// Render paints the node (and its children) on r.
	Render(r svgdraw.Renderer)
}

// NodeBase stores the attributes and children of a node,
// and is embedded by every element.
// A node exclusively owns its children. The parent link is
// only used to walk up the tree.
type NodeBase struct {
	parent   Node
	children []Node
	attrs    map[string]any

	paths pathCache
	doc   *Document // only set on the document root
}

func (b *NodeBase) Base() *NodeBase { return b }

// Parent returns nil for the root.
func (b *NodeBase) Parent() Node { return b.parent }

func (b *NodeBase) Children() []Node { return b.children }

// ID returns the "id" attribute, or an empty string.
func (b *NodeBase) ID() string {
	id, _ := b.attrs["id"].(string)
	return id
}

// GetAttr returns the attribute stored on the node itself,
// without any inheritance.
func (b *NodeBase) GetAttr(name string) (any, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

// AppendChild moves the children at the end of the parent
// child list, removing them from their previous parent if needed.
// The cached geometry of the moved subtrees is dropped.
func AppendChild(parent Node, children ...Node) {
	pb := parent.Base()
	for _, child := range children {
		cb := child.Base()
		if cb.parent != nil {
			RemoveChild(cb.parent, child)
		}
		cb.parent = parent
		pb.children = append(pb.children, child)
		invalidateTree(child)
		if stop, ok := child.(*Stop); ok {
			if g, ok := parent.(gradient); ok {
				gb := g.stopList()
				gb.stops = append(gb.stops, stop)
			}
		}
	}
}

// RemoveChild detaches child from parent, returning false
// if it is not a child of parent.
func RemoveChild(parent, child Node) bool {
	pb := parent.Base()
	for i, c := range pb.children {
		if c != child {
			continue
		}
		pb.children = append(pb.children[:i:i], pb.children[i+1:]...)
		child.Base().parent = nil
		invalidateTree(child)
		if g, ok := parent.(gradient); ok {
			gb := g.stopList()
			for j, s := range gb.stops {
				if Node(s) == child {
					gb.stops = append(gb.stops[:j:j], gb.stops[j+1:]...)
					break
				}
			}
		}
		return true
	}
	return false
}

// Walk calls fn for n and its descendants, in document order.
// The walk stops as soon as fn returns false, and Walk returns false.
func Walk(n Node, fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Base().children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

func rootOf(n Node) Node {
	for n.Base().parent != nil {
		n = n.Base().parent
	}
	return n
}

// parseIRI accepts "#id", "url(#id)" and "id".
func parseIRI(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "url(") {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "url("), ")")
		s = strings.Trim(strings.TrimSpace(s), `'"`)
	}
	return strings.TrimPrefix(s, "#")
}

// lookupID searches the tree containing n for the element
// referenced by iri.
func lookupID(n Node, iri string) Node {
	id := parseIRI(iri)
	if id == "" || n == nil {
		return nil
	}
	var found Node
	Walk(rootOf(n), func(c Node) bool {
		if c.Base().ID() == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// href returns the referenced element, using either
// "href" or "xlink:href".
func href(n Node) Node {
	ref, _ := n.Base().attrs["href"].(string)
	if ref == "" {
		ref, _ = n.Base().attrs["xlink:href"].(string)
	}
	if ref == "" {
		return nil
	}
	return lookupID(n, ref)
}
