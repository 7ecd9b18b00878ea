package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	p, err := ParseText(strings.NewReader("____\n_##_\n____\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, 3, p.Height())
	assert.True(t, p.OpenAt(0, 0))
	assert.False(t, p.OpenAt(1, 1))
	assert.Len(t, p.Slots(), 4)
}

func TestParseTextPadsShortRows(t *testing.T) {
	// The second row is shorter; missing cells are blocks.
	p, err := ParseText(strings.NewReader("___\n__\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Width())
	assert.False(t, p.OpenAt(1, 2))
}

func TestParseTextOnlyUnderscoreIsOpen(t *testing.T) {
	p, err := ParseText(strings.NewReader("_x. #_\n"))
	require.NoError(t, err)
	for c, want := range []bool{true, false, false, false, false, true} {
		assert.Equal(t, want, p.OpenAt(0, c), "col %d", c)
	}
}

func TestParseYAML(t *testing.T) {
	src := `
rows:
  - "___"
  - "#_#"
  - "#_#"
`
	p, err := ParseYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 3, p.Height())
	assert.ElementsMatch(t, []Slot{
		{0, 0, Across, 3},
		{0, 1, Down, 3},
	}, p.Slots())
}

func TestParseErrors(t *testing.T) {
	_, err := ParseText(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ParseText(strings.NewReader("###\n###\n"))
	assert.Error(t, err)

	_, err = ParseYAML(strings.NewReader("rows: {bad: structure}"))
	assert.Error(t, err)
}
