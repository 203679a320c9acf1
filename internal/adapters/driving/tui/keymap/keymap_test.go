package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"accept", km.Accept, []string{"enter"}},
		{"reject", km.Reject, []string{"esc", "q"}},
		{"edit", km.Edit, []string{"e"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"confirm", km.Confirm, []string{"enter"}},
		{"cancel", km.Cancel, []string{"esc"}},
		{"quit", km.Quit, []string{"ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_ReviewHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ReviewHelp()

	require.Len(t, help, 4)
	assert.Equal(t, "edit field", help[0].Help().Desc)
	assert.Equal(t, "accept", help[1].Help().Desc)
	assert.Equal(t, "reject", help[2].Help().Desc)
}

func TestKeyMap_EditHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.EditHelp()

	require.Len(t, help, 2)
	assert.Equal(t, "apply", help[0].Help().Desc)
	assert.Equal(t, "cancel", help[1].Help().Desc)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Reject))
	assert.True(t, Matches("esc", km.Reject))
	assert.False(t, Matches("enter", km.Reject))
	assert.False(t, Matches("", km.Edit))
}
