// Package render hands Graphviz source to an external layout engine and
// returns the image it produces. The engine is a collaborator outside the
// program: a missing executable surfaces as ErrUnavailable.
package render
