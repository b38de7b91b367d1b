package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a class without a name is added.
	ErrEmptyName = errors.New("class name must not be empty")
	// ErrDuplicateClass is returned when a class name is already present.
	ErrDuplicateClass = errors.New("duplicate class")
)

// Class describes a single UML class.
type Class struct {
	Name string
	// Attributes are pre-formatted "name: type" lines, in display order.
	Attributes []string
	// Methods are pre-formatted "name(params): returnType" lines, in display order.
	Methods []string
	// Inherits names the parent class. Empty means no parent.
	Inherits string
	// Related names the classes this one is associated with.
	Related []string
}

// Catalog is an insertion-ordered set of classes keyed by name.
type Catalog struct {
	classes []*Class
	index   map[string]int
}

// New creates an empty catalog, optionally seeded with classes. It returns
// an error on the first class that cannot be added.
func New(classes ...*Class) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int)}
	for _, cls := range classes {
		if err := c.Add(cls); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for static, code-defined
// catalogs and tests.
func MustNew(classes ...*Class) *Catalog {
	c, err := New(classes...)
	if err != nil {
		panic(err)
	}
	return c
}

// Add appends a class to the catalog.
func (c *Catalog) Add(cls *Class) error {
	if cls == nil || cls.Name == "" {
		return ErrEmptyName
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, exists := c.index[cls.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateClass, cls.Name)
	}
	c.index[cls.Name] = len(c.classes)
	c.classes = append(c.classes, cls)
	return nil
}

// Get returns the class registered under name.
func (c *Catalog) Get(name string) (*Class, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.classes[i], true
}

// Has reports whether a class named name is present.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Len returns the number of classes. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.classes)
}

// Classes returns the classes in insertion order. The returned slice is a
// copy; the classes themselves are shared.
func (c *Catalog) Classes() []*Class {
	if c == nil {
		return nil
	}
	out := make([]*Class, len(c.classes))
	copy(out, c.classes)
	return out
}

// Names returns the class names in insertion order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.classes))
	for i, cls := range c.classes {
		names[i] = cls.Name
	}
	return names
}
