package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	c, err := New(
		&Class{Name: "Zebra"},
		&Class{Name: "Animal"},
		&Class{Name: "Mammal"},
	)
	require.NoError(t, err)

	require.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"Zebra", "Animal", "Mammal"}, c.Names())
	classes := c.Classes()
	require.Len(t, classes, 3)
	assert.Equal(t, "Mammal", classes[2].Name)
}

func TestCatalog_AddRejectsDuplicates(t *testing.T) {
	t.Parallel()

	c, err := New(&Class{Name: "User"})
	require.NoError(t, err)

	err = c.Add(&Class{Name: "User", Attributes: []string{"id: int"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateClass))
	assert.Contains(t, err.Error(), `"User"`)

	// The original entry must be untouched.
	cls, ok := c.Get("User")
	require.True(t, ok)
	assert.Empty(t, cls.Attributes)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_AddRejectsEmptyName(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)

	require.ErrorIs(t, c.Add(&Class{}), ErrEmptyName)
	require.ErrorIs(t, c.Add(nil), ErrEmptyName)
	assert.Zero(t, c.Len())
}

func TestCatalog_ClassesReturnsCopy(t *testing.T) {
	t.Parallel()

	c := MustNew(&Class{Name: "A"}, &Class{Name: "B"})
	classes := c.Classes()
	classes[0] = &Class{Name: "Mutated"}

	assert.Equal(t, []string{"A", "B"}, c.Names())
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var c *Catalog
	assert.Zero(t, c.Len())
	assert.Nil(t, c.Classes())
	_, ok := c.Get("anything")
	assert.False(t, ok)
}

func TestMustNew_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustNew(&Class{Name: "A"}, &Class{Name: "A"})
	})
}
