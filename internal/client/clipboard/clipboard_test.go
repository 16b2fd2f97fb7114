package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_WriteText(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this host")
	}

	var got string
	s := &System{write: func(text string) error { got = text; return nil }}

	require.NoError(t, s.WriteText("January 1, 2024\nA"))
	assert.Equal(t, "January 1, 2024\nA", got)
}

func TestSystem_WriteText_WrapsFailure(t *testing.T) {
	s := &System{write: func(string) error { return errors.New("xclip exited 1") }}

	err := s.WriteText("x")
	require.ErrorIs(t, err, ErrCopyFailed)
}
