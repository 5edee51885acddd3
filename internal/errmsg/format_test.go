//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLibraryList,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpLibraryList,
			err:      errors.New("permission denied"),
			expected: "Failed to list directory: permission denied",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("boom")
	assert.Empty(t, FormatWith(OpHandleEvent, "track_list", nil))
	assert.Equal(t, "Failed to handle event: boom", FormatWith(OpHandleEvent, "", err))
	assert.Equal(t, "Failed to handle event 'track_list': boom", FormatWith(OpHandleEvent, "track_list", err))
}

func TestWrap(t *testing.T) {
	t.Run("nil cause yields nil", func(t *testing.T) {
		assert.NoError(t, Wrap(ErrHandler, OpHandleEvent, "x", nil))
	})

	t.Run("matches kind and cause", func(t *testing.T) {
		err := IO(OpLibraryList, "/music", fs.ErrPermission)

		assert.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.NotErrorIs(t, err, ErrHandler)
		assert.Equal(t, "i/o error: list directory [/music]: permission denied", err.Error())
	})

	t.Run("as *Error", func(t *testing.T) {
		err := Wrap(ErrDispatch, OpFocus, "nowhere", errors.New("unknown component"))

		var e *Error
		assert.ErrorAs(t, err, &e)
		assert.Equal(t, OpFocus, e.Op)
		assert.Equal(t, "nowhere", e.Component)
	})
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(nil))
	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Equal(t,
		"Failed to list directory '/music': permission denied",
		Message(IO(OpLibraryList, "/music", fs.ErrPermission)))
}
