package svgtree

import (
	"strings"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
	"golang.org/x/text/language"
)

var markerAttributes = [...]string{"marker-start", "marker-mid", "marker-end"}

// Group gathers its children, which inherit its attributes.
type Group struct {
	NodeBase
	markersSet bool
}

func NewGroup(children ...Node) *Group {
	g := &Group{}
	AppendChild(g, children...)
	return g
}

func (*Group) TagName() string { return "g" }

func (*Group) isContainer()    {}
func (*Group) acceptsMarkers() {}

// Path returns the aggregated geometry of the children.
func (g *Group) Path(r svgdraw.Renderer) *svgpath.Path { return Aggregate(g, r) }

// addMarkers copies the markers of the group to the children
// accepting markers and not defining their own.
// It is only done once.
func (g *Group) addMarkers() {
	if g.markersSet {
		return
	}
	g.markersSet = true
	for _, name := range markerAttributes {
		v, has := g.attrs[name]
		if !has {
			continue
		}
		for _, c := range g.children {
			if _, ok := c.(markerElement); !ok {
				continue
			}
			if _, own := c.Base().attrs[name]; !own {
				c.Base().SetAttr(name, v)
			}
		}
	}
}

func (g *Group) Render(r svgdraw.Renderer) {
	g.addMarkers()
	renderContainer(g, r, svgpath.Identity, g.children)
}

// Switch only renders its first child whose conditional
// attributes are satisfied.
type Switch struct {
	NodeBase
}

func NewSwitch(children ...Node) *Switch {
	s := &Switch{}
	AppendChild(s, children...)
	return s
}

func (*Switch) TagName() string { return "switch" }

func (*Switch) isContainer() {}

// Path returns the aggregated geometry of all the children.
func (s *Switch) Path(r svgdraw.Renderer) *svgpath.Path { return Aggregate(s, r) }

// Selected returns the child to render, or nil.
func (s *Switch) Selected() Node {
	langs := optionsOf(s).Languages
	for _, c := range s.children {
		if conditionsPass(c, langs) {
			return c
		}
	}
	return nil
}

func (s *Switch) Render(r svgdraw.Renderer) {
	c := s.Selected()
	if c == nil {
		return
	}
	renderContainer(s, r, svgpath.Identity, []Node{c})
}

// conditionsPass evaluates "systemLanguage" against the
// user languages, matching on the base language.
// No extension is supported, so that any "requiredExtensions"
// attribute fails.
func conditionsPass(n Node, langs []language.Tag) bool {
	attrs := n.Base().attrs
	if _, has := attrs["requiredExtensions"]; has {
		return false
	}
	list, has := attrs["systemLanguage"].(string)
	if !has {
		return true
	}
	for _, s := range strings.Split(list, ",") {
		tag, err := language.Parse(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		base, _ := tag.Base()
		for _, l := range langs {
			if lb, _ := l.Base(); lb == base {
				return true
			}
		}
	}
	return false
}

// Symbol is a template, only rendered through Use.
type Symbol struct {
	NodeBase
}

func NewSymbol(id string, children ...Node) *Symbol {
	s := &Symbol{}
	s.SetAttr("id", id)
	AppendChild(s, children...)
	return s
}

func (*Symbol) TagName() string { return "symbol" }

func (*Symbol) isContainer() {}

// Path returns the aggregated geometry of the children,
// without the view box transform.
func (s *Symbol) Path(r svgdraw.Renderer) *svgpath.Path { return Aggregate(s, r) }

// Render does nothing : symbols are rendered by Use.
func (*Symbol) Render(svgdraw.Renderer) {}

func (s *Symbol) ViewBox() ViewBox { return Attribute(s, "viewBox", false, ViewBox{}) }

func (s *Symbol) AspectRatio() AspectRatio {
	return Attribute(s, "preserveAspectRatio", false, DefaultAspectRatio)
}

// viewBoxMatrix maps the view box into the viewport (width, height).
// Non positive dimensions default to the view box size.
func (s *Symbol) viewBoxMatrix(width, height float64) svgpath.Matrix {
	vb := s.ViewBox()
	if vb.IsEmpty() {
		return svgpath.Identity
	}
	if width <= 0 {
		width = vb.Width
	}
	if height <= 0 {
		height = vb.Height
	}
	return vb.Matrix(width, height, s.AspectRatio())
}

func (s *Symbol) renderReferenced(r svgdraw.Renderer, width, height float64) {
	renderContainer(s, r, s.viewBoxMatrix(width, height), s.children)
}

// Use renders the element referenced by "href", translated by (x, y).
type Use struct {
	NodeBase
	expanding bool // guard against reference cycles
}

// NewUse returns a reference to the element with the given id.
func NewUse(id string, x, y float64) *Use {
	u := &Use{}
	u.SetAttr("href", "#"+id)
	u.SetAttr("x", x)
	u.SetAttr("y", y)
	return u
}

func (*Use) TagName() string { return "use" }

// Referenced returns the element referenced by "href", or nil.
func (u *Use) Referenced() Node { return href(u) }

func (u *Use) offset() svgpath.Matrix {
	return svgpath.NewTranslate(device(u, "x", false, Px(0)), device(u, "y", false, Px(0)))
}

func (u *Use) size() (w, h float64) {
	return device(u, "width", false, Px(0)), device(u, "height", false, Px(0))
}

// Path returns the geometry of the referenced element, including
// its transform, translated by (x, y). It is recomputed at each call,
// and is nil if the reference is not found or cyclic.
func (u *Use) Path(r svgdraw.Renderer) *svgpath.Path {
	ref := u.Referenced()
	if ref == nil || u.expanding {
		return nil
	}
	u.expanding = true
	defer func() { u.expanding = false }()

	var path *svgpath.Path
	switch ref := ref.(type) {
	case *Symbol:
		path = Aggregate(ref, r)
		path.Transform(ref.viewBoxMatrix(u.size()))
	case container:
		path = Aggregate(ref, r)
	case Shape:
		path = ref.Path(r).Clone()
		path.AddPath(Aggregate(ref, r))
	default:
		return nil
	}
	path.Transform(transformOf(ref))
	path.Transform(u.offset())
	return path
}

func (u *Use) Render(r svgdraw.Renderer) {
	if !isVisible(u) || !isDisplayable(u) || u.expanding {
		return
	}
	ref := u.Referenced()
	if ref == nil {
		return
	}
	u.expanding = true
	defer func() { u.expanding = false }()

	pop, ok := pushTransform(r, transformOf(u).Mult(u.offset()))
	defer pop()
	if !ok {
		return
	}
	if sym, isSymbol := ref.(*Symbol); isSymbol {
		w, h := u.size()
		sym.renderReferenced(r, w, h)
		return
	}
	ref.Render(r)
}

// Document is the root of a tree. It stores the options
// and the errors recovered in StrictErrorMode.
type Document struct {
	Group
	Options Options
	errs    []error
}

// NewDocument returns a root using opts.
func NewDocument(opts Options, children ...Node) *Document {
	d := &Document{Options: opts}
	d.doc = d
	AppendChild(d, children...)
	return d
}

func (*Document) TagName() string { return "svg" }

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) Node { return lookupID(d, id) }

// Errors returns the errors recovered in StrictErrorMode.
func (d *Document) Errors() []error { return d.errs }

// ViewBox returns the "viewBox" attribute.
func (d *Document) ViewBox() ViewBox { return Attribute(d, "viewBox", false, ViewBox{}) }

// viewBoxMatrix maps the view box into the "width" and "height"
// of the document, which default to the view box size.
func (d *Document) viewBoxMatrix() svgpath.Matrix {
	vb := d.ViewBox()
	if vb.IsEmpty() {
		return svgpath.Identity
	}
	w := device(d, "width", false, Px(vb.Width))
	h := device(d, "height", false, Px(vb.Height))
	return vb.Matrix(w, h, Attribute(d, "preserveAspectRatio", false, DefaultAspectRatio))
}

func (d *Document) Render(r svgdraw.Renderer) {
	d.addMarkers()
	renderContainer(d, r, d.viewBoxMatrix(), d.children)
}
