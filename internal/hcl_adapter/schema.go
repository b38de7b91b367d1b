package hcl_adapter

// fileRoot is used to decode all possible top-level blocks from any file.
// Anything else in a file is rejected by the decoder.
type fileRoot struct {
	Classes  []*Class   `hcl:"class,block"`
	Diagrams []*Diagram `hcl:"diagram,block"`
}

// Class maps to a `class "<name>" { ... }` block.
type Class struct {
	Name       string   `hcl:"name,label"`
	Attributes []string `hcl:"attributes,optional"`
	Methods    []string `hcl:"methods,optional"`
	Inherits   *string  `hcl:"inherits,optional"`
	Related    []string `hcl:"related,optional"`
}

// Diagram maps to the `diagram { ... }` block.
type Diagram struct {
	Root  *string `hcl:"root,optional"`
	Style *Style  `hcl:"style,block"`
}

// Style maps to the `style { ... }` block nested in `diagram`.
type Style struct {
	Preset         *string   `hcl:"preset,optional"`
	FontFamily     *string   `hcl:"font_family,optional"`
	FontSize       *int      `hcl:"font_size,optional"`
	FontWeight     *string   `hcl:"font_weight,optional"`
	FontColor      *string   `hcl:"font_color,optional"`
	PageSize       []float64 `hcl:"page_size,optional"`
	DPI            *int      `hcl:"dpi,optional"`
	NodeSeparation *float64  `hcl:"node_separation,optional"`
}
