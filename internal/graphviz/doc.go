// Package graphviz writes directed graphs in the Graphviz language.
//
// It only produces text. Running a layout engine over that text is the job
// of package render.
package graphviz
