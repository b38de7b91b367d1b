// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package graphviz

import (
	"bufio"
	"io"
)

// Node is a single Graphviz node statement.
type Node struct {
	ID    string
	Attrs Attributes
}

// Edge is a single directed edge statement.
type Edge struct {
	From  string
	To    string
	Attrs Attributes
}

// Graph is a directed graph ready to be written in the Graphviz language.
// Nodes and edges are written in slice order.
type Graph struct {
	Name  string
	Attrs Attributes
	Nodes []Node
	Edges []Edge
}

// WriteDirectedGraph writes g to w as a digraph.
//
// If this function returns an error then an unspecified amount of partial
// data might already have been written to w.
func WriteDirectedGraph(g *Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)

	header := "digraph {\n"
	if g.Name != "" {
		header = "digraph " + quote(g.Name) + " {\n"
	}
	if _, err := bw.WriteString(header); err != nil {
		return err
	}

	if len(g.Attrs) != 0 {
		if _, err := bw.WriteString("  graph ["); err != nil {
			return err
		}
		if err := writeAttrList(g.Attrs, bw); err != nil {
			return err
		}
		if _, err := bw.WriteString("];\n"); err != nil {
			return err
		}
	}

	for _, node := range g.Nodes {
		if err := writeStatement(bw, quote(node.ID), node.Attrs); err != nil {
			return err
		}
	}

	for _, edge := range g.Edges {
		if err := writeStatement(bw, quote(edge.From)+" -> "+quote(edge.To), edge.Attrs); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("}\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func writeStatement(bw *bufio.Writer, head string, attrs Attributes) error {
	if _, err := bw.WriteString("  " + head); err != nil {
		return err
	}
	if len(attrs) != 0 {
		if _, err := bw.WriteString(" ["); err != nil {
			return err
		}
		if err := writeAttrList(attrs, bw); err != nil {
			return err
		}
		if _, err := bw.WriteString("]"); err != nil {
			return err
		}
	}
	_, err := bw.WriteString(";\n")
	return err
}
