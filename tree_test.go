package animator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeYAML = `
id: panel
class: panel open
style:
  background-color: "#ffffff"
children:
  - id: title
    name: heading
    class: title
  - id: body
    class: body
    children:
      - id: item
        class: item
`

func TestLoadTree(t *testing.T) {
	root, err := LoadTree([]byte(treeYAML))
	require.NoError(t, err)

	assert.Equal(t, "panel", root.ID())
	assert.Equal(t, "panel", root.Name)
	assert.Equal(t, "panel open", root.ClassName())
	v, ok := root.InlineStyle("backgroundColor")
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", v)

	require.Equal(t, 2, root.NumChildren())
	assert.Equal(t, "heading", root.ChildAt(0).Name)
	assert.Equal(t, "item", root.ChildAt(1).ChildAt(0).ID())

	scene := NewScene(nil)
	scene.Root().AddChild(root)
	assert.Same(t, root.ChildAt(1).ChildAt(0), scene.ElementByID("item"))
}

func TestLoadTreeErrors(t *testing.T) {
	_, err := LoadTree([]byte("id: [\n"))
	assert.Error(t, err)

	_, err = LoadTree([]byte(`
id: a
children:
  - id: b
  - id: b
`))
	assert.ErrorContains(t, err, `duplicate node id "b"`)
}

func TestNodeSpecBuildGeneratesIDs(t *testing.T) {
	n := NodeSpec{Class: "x"}.Build()
	assert.NotEmpty(t, n.ID())
	assert.Equal(t, "x", n.ClassName())
}
