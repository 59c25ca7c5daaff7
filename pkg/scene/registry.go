package scene

import (
	"fmt"

	"github.com/matzehuels/sketch3d/pkg/tikz"
)

// Registry interns textual style, color, and mark-template specs to short
// stable identifiers. Interning is first-seen-wins and keyed on the exact
// input string; the same spec always maps to the same identifier within
// one registry. The registry is owned by its Scene and never shared
// process-wide.
type Registry struct {
	styles internTable
	colors internTable
	marks  internTable
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		styles: internTable{prefix: "S"},
		colors: internTable{prefix: "C"},
		marks:  internTable{prefix: "M"},
	}
}

// internTable is one deduplicating spec table. Entries keep insertion
// order so emitted tables are deterministic.
type internTable struct {
	prefix  string
	ids     map[string]string
	entries []tikz.Def
}

func (t *internTable) intern(spec string) string {
	if spec == "" {
		return ""
	}
	if id, ok := t.ids[spec]; ok {
		return id
	}
	if t.ids == nil {
		t.ids = map[string]string{}
	}
	id := fmt.Sprintf("%s%d", t.prefix, len(t.entries))
	t.ids[spec] = id
	t.entries = append(t.entries, tikz.Def{ID: id, Spec: spec})
	return id
}

// Style interns a style spec and returns its identifier. Empty specs
// return the empty identifier.
func (r *Registry) Style(spec string) string { return r.styles.intern(spec) }

// Color interns a color spec and returns its identifier.
func (r *Registry) Color(spec string) string { return r.colors.intern(spec) }

// MarkTemplate interns a mark-template spec and returns its identifier.
func (r *Registry) MarkTemplate(spec string) string { return r.marks.intern(spec) }

// Styles returns the style table in first-seen order.
func (r *Registry) Styles() []tikz.Def { return r.styles.entries }

// Colors returns the color table in first-seen order.
func (r *Registry) Colors() []tikz.Def { return r.colors.entries }

// MarkTemplates returns the mark-template table in first-seen order.
func (r *Registry) MarkTemplates() []tikz.Def { return r.marks.entries }
