package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufwagh/retouch/internal/tree"
)

const sampleSnapshot = `
kind: file
children:
  - kind: import
    name: lib/strings
  - kind: decl
    name: msg
    suppress: [collapse-concat]
    children:
      - kind: call
        name: concat
        children:
          - kind: literal
            text: foo
          - kind: literal
            text: bar
`

func TestParse(t *testing.T) {
	t.Parallel()

	tr, err := Parse([]byte(sampleSnapshot))
	require.NoError(t, err)

	root := tr.Root()
	require.Equal(t, tree.KindFile, root.Kind)
	require.Len(t, root.Children, 2)

	assert.Equal(t, tree.KindImport, root.Children[0].Kind)
	assert.Equal(t, "lib/strings", root.Children[0].Name)

	decl := root.Children[1]
	assert.Equal(t, "msg", decl.Name)
	assert.True(t, decl.Suppressed("collapse-concat"))

	call := decl.Children[0]
	require.Len(t, call.Children, 2)
	assert.Equal(t, "foo", call.Children[0].Text)

	// spans were laid out against the rendered text
	assert.Equal(t, "import lib/strings\nlet msg = concat(foo, bar)", tr.Text())
	assert.Equal(t, len(tr.Text()), root.Span.End)
}

func TestParseUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("kind: widget"))
	assert.ErrorContains(t, err, `unknown node kind "widget"`)

	_, err = Parse([]byte("kind: file\nchildren: [{kind: gadget}]"))
	assert.ErrorContains(t, err, `unknown node kind "gadget"`)
}

func TestParseBadYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(":\n:::"))
	assert.ErrorContains(t, err, "parsing snapshot")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o644))

	tr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tree.KindFile, tr.Root().Kind)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading snapshot")
}

func TestLoadUniverse(t *testing.T) {
	t.Parallel()

	index := `
fmt.Println:
  - name: Println
    import: lib/fmt
  - name: Println
    import: vendor/fmt
strings:
  - name: Repeat
    import: lib/strings
`
	path := filepath.Join(t.TempDir(), "index.yaml")
	require.NoError(t, os.WriteFile(path, []byte(index), 0o644))

	u, err := LoadUniverse(path)
	require.NoError(t, err)

	decls := u.Resolve("fmt.Println")
	require.Len(t, decls, 2)
	assert.Equal(t, "lib/fmt", decls[0].ImportPath)

	_, err = LoadUniverse(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading index")
}
