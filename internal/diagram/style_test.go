package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	t.Parallel()

	def, err := Preset("default")
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), def)

	classic, err := Preset("classic")
	require.NoError(t, err)
	assert.Equal(t, 12, classic.FontSize)
	assert.Equal(t, FontWeightNormal, classic.FontWeight)
	assert.Equal(t, "Arial", classic.FontFamily)
	assert.Nil(t, classic.PageSize)

	_, err = Preset("blueprint")
	require.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), "classic")
}

func TestPreset_ReturnsFreshValue(t *testing.T) {
	t.Parallel()

	s, err := Preset("default")
	require.NoError(t, err)
	s.FontSize = 99

	again, err := Preset("default")
	require.NoError(t, err)
	assert.Equal(t, 14, again.FontSize)
}

func TestParseFontWeight(t *testing.T) {
	t.Parallel()

	w, err := ParseFontWeight("bold")
	require.NoError(t, err)
	assert.Equal(t, FontWeightBold, w)

	w, err = ParseFontWeight("normal")
	require.NoError(t, err)
	assert.Equal(t, FontWeightNormal, w)

	_, err = ParseFontWeight("heavy")
	require.Error(t, err)
}

func TestEdgeKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "generalization", Generalization.String())
	assert.Equal(t, "association", Association.String())
	assert.Equal(t, "EdgeKind(7)", EdgeKind(7).String())
}
