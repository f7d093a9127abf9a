package jsondelta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	cases := []struct {
		path     string
		segments []string
		count    int
		last     string
	}{
		{"/a/b/c", []string{"a", "b", "c"}, 3, "c"},
		{"/list/2", []string{"list", "2"}, 2, "2"},
		{"/a", []string{"a"}, 1, "a"},
		{"", []string{""}, 1, ""},
		// a trailing separator yields an empty final segment
		{"/a/b/c/", []string{"a", "b", "c", ""}, 4, ""},
	}

	for _, c := range cases {
		segments, count, last := SplitPath(c.path)
		assert.Equal(t, c.segments, segments, "segments of %q", c.path)
		assert.Equal(t, c.count, count, "count of %q", c.path)
		assert.Equal(t, c.last, last, "last of %q", c.path)
	}
}

func TestAppendHelpers(t *testing.T) {
	assert.Equal(t, "/a", appendKey("", "a"))
	assert.Equal(t, "/a/b", appendKey("/a", "b"))
	assert.Equal(t, "/a/3", appendIndex("/a", 3))
	// no RFC 6901 escaping: slashes in keys join verbatim
	assert.Equal(t, "/a/b/c", appendKey("/a", "b/c"))
}
