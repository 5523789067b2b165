package cable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/drake.cfg")
	require.NoError(t, err)
	assert.Equal(t, Drake(), c)

	ok, messages := c.Validate(true)
	assert.True(t, ok)
	assert.Empty(t, messages)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.cfg")
	assert.Error(t, err)
}

func TestParseMissingComponent(t *testing.T) {
	_, err := Parse(`
[cable]
name = Bare
area = 0.1

[component "shell"]
coefficient = -10
coefficient = 1000
limit = 0.5
`)
	assert.True(t, errors.Is(err, ErrInvalidCable))
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("[cable\nname = broken")
	assert.Error(t, err)
}
