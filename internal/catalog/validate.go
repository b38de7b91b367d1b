package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ReferenceKind tells which relationship a reference came from.
type ReferenceKind string

const (
	KindInheritance ReferenceKind = "inherits"
	KindAssociation ReferenceKind = "related"
)

// DanglingReference is a reference to a class that is not in the catalog.
type DanglingReference struct {
	Class  string
	Target string
	Kind   ReferenceKind
}

func (r DanglingReference) String() string {
	return fmt.Sprintf("class %q: %s references unknown class %q", r.Class, r.Kind, r.Target)
}

// Error makes a DanglingReference usable as an error value.
func (r DanglingReference) Error() string {
	return r.String()
}

// Validate lists every inherits or related reference whose target is not a
// class of c. References are reported in catalog order; for each class the
// parent comes first, then its associations in order. Validate never changes
// the catalog and the builder does not call it.
func Validate(c *Catalog) []DanglingReference {
	var refs []DanglingReference
	for _, cls := range c.Classes() {
		if cls.Inherits != "" && !c.Has(cls.Inherits) {
			refs = append(refs, DanglingReference{Class: cls.Name, Target: cls.Inherits, Kind: KindInheritance})
		}
		for _, rel := range cls.Related {
			if !c.Has(rel) {
				refs = append(refs, DanglingReference{Class: cls.Name, Target: rel, Kind: KindAssociation})
			}
		}
	}
	return refs
}

// Strict runs Validate and folds the findings into a single error. It
// returns nil when every reference resolves.
func Strict(c *Catalog) error {
	var result *multierror.Error
	for _, ref := range Validate(c) {
		result = multierror.Append(result, ref)
	}
	return result.ErrorOrNil()
}
