// Package catalog defines the in-memory description of the classes that make
// up a diagram: their attributes, methods, parent class and associations.
//
// A Catalog keeps classes in insertion order. That order is the declaration
// order of the nodes in the generated graph; the final layout is left to the
// renderer. The catalog does not check that referenced classes exist. Callers
// that want strict behavior run Validate (or Strict) before building.
package catalog
