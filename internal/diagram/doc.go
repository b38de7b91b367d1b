// Package diagram turns a class catalog into the description of a UML class
// diagram: one record-shaped node per class, generalization edges for
// inheritance and arrowless association edges for related classes.
//
// Build is pure and deterministic. It performs no I/O and never fails; the
// result can be serialized with Graph.WriteDOT and passed to a renderer.
package diagram
