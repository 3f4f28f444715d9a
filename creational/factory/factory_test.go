package factory

import (
	"bytes"
	"io"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForTagKnownSinks(t *testing.T) {
	sink, err := ForTag("stdout")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, sink)

	sink, err = ForTag("stderr")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, sink)

	sink, err = ForTag("discard")
	require.NoError(t, err)
	assert.Equal(t, io.Discard, sink)
}

func TestForTagBufferIsFreshPerCall(t *testing.T) {
	first, err := ForTag("buffer")
	require.NoError(t, err)
	second, err := ForTag("buffer")
	require.NoError(t, err)

	a, ok := first.(*bytes.Buffer)
	require.True(t, ok)
	b, ok := second.(*bytes.Buffer)
	require.True(t, ok)
	assert.NotSame(t, a, b)
}

func TestForTagUnknown(t *testing.T) {
	sink, err := ForTag("tape")
	assert.Nil(t, sink)
	assert.ErrorIs(t, err, ErrUnknownTag)
	assert.Contains(t, err.Error(), `"tape"`)
}

func TestTagsAllResolve(t *testing.T) {
	tags := Tags()
	assert.True(t, sort.StringsAreSorted(tags))
	for _, tag := range tags {
		sink, err := ForTag(tag)
		assert.NoError(t, err, "tag %q", tag)
		assert.NotNil(t, sink, "tag %q", tag)
	}
}
