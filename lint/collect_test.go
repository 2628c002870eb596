package lint

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func collectTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".gitignore":           "dist/\n*.gen.vue\n",
		"a.vue":                "<template></template>",
		"notes.txt":            "text",
		"x.gen.vue":            "<template></template>",
		"dist/c.vue":           "<template></template>",
		"docs/f.md":            "# f",
		"sub/d.html":           "<div></div>",
		"sub/.gitignore":       "local.vue\n",
		"sub/local.vue":        "<template></template>",
		"node_modules/e.vue":   "<template></template>",
		".git/objects/fake.md": "# f",
	})
	return root
}

func TestCollect(t *testing.T) {
	root := collectTree(t)
	paths := func(names ...string) []string {
		results := make([]string, len(names))
		for i, name := range names {
			results[i] = filepath.Join(root, filepath.FromSlash(name))
		}
		return results
	}

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{
			name:     "gitignore",
			filter:   Filter{RespectGitignore: true},
			expected: paths("a.vue", "docs/f.md", "sub/d.html"),
		},
		{
			name:     "everything supported",
			filter:   Filter{},
			expected: paths("a.vue", "dist/c.vue", "docs/f.md", "sub/d.html", "sub/local.vue", "x.gen.vue"),
		},
		{
			name:     "extensions and exclude",
			filter:   Filter{Extensions: []string{".VUE"}, Exclude: []string{"sub/"}},
			expected: paths("a.vue", "dist/c.vue", "x.gen.vue"),
		},
		{
			name:     "include",
			filter:   Filter{Include: []string{"docs/**"}},
			expected: paths("docs/f.md"),
		},
		{
			name:     "include and gitignore",
			filter:   Filter{Include: []string{"*.vue"}, RespectGitignore: true},
			expected: paths("a.vue"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := Collect(root, tt.filter)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, files)
		})
	}
}

func TestCollectFile(t *testing.T) {
	root := collectTree(t)
	file := filepath.Join(root, "notes.txt")
	files, err := Collect(file, Filter{})
	assert.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestCollectErrors(t *testing.T) {
	root := collectTree(t)
	_, err := Collect(filepath.Join(root, "missing"), Filter{})
	assert.IsError(t, err, ErrReadFile)

	_, err = Collect(root, Filter{Exclude: []string{"["}})
	assert.IsError(t, err, ErrInvalidPattern)
}
