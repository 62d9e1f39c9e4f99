package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagList_Value(t *testing.T) {
	t.Run("encodes as JSON array text", func(t *testing.T) {
		value, err := TagList{"culture", "food"}.Value()
		require.NoError(t, err)
		assert.Equal(t, `["culture","food"]`, value)
	})

	t.Run("nil encodes as empty array", func(t *testing.T) {
		var tags TagList
		value, err := tags.Value()
		require.NoError(t, err)
		assert.Equal(t, `[]`, value)
	})
}

func TestTagList_Scan(t *testing.T) {
	t.Run("decodes JSON array text", func(t *testing.T) {
		var tags TagList
		require.NoError(t, tags.Scan(`["a","b"]`))
		assert.Equal(t, TagList{"a", "b"}, tags)
	})

	t.Run("byte slice source", func(t *testing.T) {
		var tags TagList
		require.NoError(t, tags.Scan([]byte(`["x"]`)))
		assert.Equal(t, TagList{"x"}, tags)
	})

	t.Run("nil and empty scan to empty list", func(t *testing.T) {
		var tags TagList
		require.NoError(t, tags.Scan(nil))
		assert.Equal(t, TagList{}, tags)

		require.NoError(t, tags.Scan(""))
		assert.Equal(t, TagList{}, tags)

		require.NoError(t, tags.Scan(`null`))
		assert.Equal(t, TagList{}, tags)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		var tags TagList
		assert.Error(t, tags.Scan(`not json`))
	})

	t.Run("rejects unsupported source type", func(t *testing.T) {
		var tags TagList
		assert.Error(t, tags.Scan(42))
	})
}

func TestNewTimestamp(t *testing.T) {
	ts := NewTimestamp()

	assert.True(t, strings.HasSuffix(ts, "Z"), "timestamp %q should end in Z", ts)
	assert.Regexp(t, `\.\d{6}Z$`, ts, "timestamp %q should carry microsecond precision", ts)

	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}
