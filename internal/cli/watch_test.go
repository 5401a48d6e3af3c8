package cli

import (
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTriggers(t *testing.T) {
	watched, err := filepath.Abs("en.json")
	require.NoError(t, err)

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{
			name:     "write to watched file",
			event:    fsnotify.Event{Name: "en.json", Op: fsnotify.Write},
			expected: true,
		},
		{
			name:     "create of watched file",
			event:    fsnotify.Event{Name: "en.json", Op: fsnotify.Create},
			expected: true,
		},
		{
			name:     "write to sibling file",
			event:    fsnotify.Event{Name: "other.json", Op: fsnotify.Write},
			expected: false,
		},
		{
			name:     "chmod of watched file",
			event:    fsnotify.Event{Name: "en.json", Op: fsnotify.Chmod},
			expected: false,
		},
		{
			name:     "remove of watched file",
			event:    fsnotify.Event{Name: "en.json", Op: fsnotify.Remove},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, watchTriggers(tt.event, watched))
		})
	}
}
