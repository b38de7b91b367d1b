package diagram

import (
	"strconv"

	"github.com/specialistvlad/umlgridgo/internal/catalog"
)

// DefaultRoot is the class whose own associations are left out of the
// diagram unless the caller picks another one.
const DefaultRoot = "User"

// Build converts a catalog into a diagram description.
//
// Nodes follow catalog order. Generalization edges come next, then
// association edges. Associations declared by the root class are skipped;
// an empty root skips nothing. Build does not check references: an edge to a
// class missing from the catalog is emitted as is and the renderer decides
// what to make of it.
func Build(c *catalog.Catalog, style Style, root string) *Graph {
	classes := c.Classes()
	fontSize := strconv.Itoa(style.FontSize)

	g := &Graph{
		Attrs: graphAttrs(style),
		Nodes: make([]Node, 0, len(classes)),
	}

	for _, cls := range classes {
		attrs := map[string]string{
			"shape":    "record",
			"fontname": style.fontName(),
			"fontsize": fontSize,
		}
		if style.FontColor != "" {
			attrs["fontcolor"] = style.FontColor
		}
		g.Nodes = append(g.Nodes, Node{
			ID: cls.Name,
			Compartments: []string{
				escapeRecordText(cls.Name),
				compartment(cls.Attributes),
				compartment(cls.Methods),
			},
			Attrs: attrs,
		})
	}

	for _, cls := range classes {
		if cls.Inherits == "" {
			continue
		}
		g.Edges = append(g.Edges, Edge{
			From: cls.Inherits,
			To:   cls.Name,
			Kind: Generalization,
			Attrs: map[string]string{
				"arrowhead": "onormal",
				"fontsize":  fontSize,
			},
		})
	}

	for _, cls := range classes {
		if root != "" && cls.Name == root {
			continue
		}
		for _, rel := range cls.Related {
			g.Edges = append(g.Edges, Edge{
				From: cls.Name,
				To:   rel,
				Kind: Association,
				Attrs: map[string]string{
					"arrowhead": "none",
					"fontsize":  fontSize,
				},
			})
		}
	}

	return g
}

func graphAttrs(style Style) map[string]string {
	direction := style.Direction
	if direction == "" {
		direction = DirectionTopToBottom
	}
	attrs := map[string]string{
		"rankdir":  direction,
		"fontname": style.fontName(),
		"fontsize": strconv.Itoa(style.FontSize),
	}
	if style.PageSize != nil {
		attrs["size"] = formatFloat(style.PageSize.Width) + "," + formatFloat(style.PageSize.Height)
	}
	if style.DPI > 0 {
		attrs["dpi"] = strconv.Itoa(style.DPI)
	}
	if style.NodeSeparation > 0 {
		attrs["nodesep"] = formatFloat(style.NodeSeparation)
	}
	return attrs
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
