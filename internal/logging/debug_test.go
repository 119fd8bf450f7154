package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("disabled when TD_DEBUG is unset", func(t *testing.T) {
		t.Setenv("TD_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("enabled for any non-empty value", func(t *testing.T) {
		for _, value := range []string{"1", "true", "yes", "anything"} {
			t.Setenv("TD_DEBUG", value)
			assert.True(t, DebugEnabled())
		}
	})
}
