package xmlnode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/converter/node"
)

const patientXML = `<?xml version="1.0" encoding="UTF-8"?>
<Patient xmlns="http://hl7.org/fhir">
  <id value="example"/>
  <text>
    <status value="generated"/>
    <div xmlns="http://www.w3.org/1999/xhtml"><p>Peter</p></div>
  </text>
  <contained>
    <Basic>
      <id value="b1"/>
    </Basic>
  </contained>
  <name id="n1">
    <given value="Peter">
      <extension url="http://example.org/ext">
        <valueString value="x"/>
      </extension>
    </given>
    <given value="James"/>
  </name>
</Patient>`

func TestParse(t *testing.T) {
	tree, err := Parse(strings.NewReader(patientXML))
	require.NoError(t, err)

	assert.Equal(t, "Patient", tree.ResourceType())

	id, ok := node.Find(tree, "id")
	require.True(t, ok)
	text, has := id.Text()
	assert.True(t, has)
	assert.Equal(t, "example", text)

	t.Run("narrative div kept as xhtml", func(t *testing.T) {
		narrative, ok := node.Find(tree, "text")
		require.True(t, ok)
		div, ok := node.Find(narrative, "div")
		require.True(t, ok)
		xhtml, _ := div.Text()
		assert.Contains(t, xhtml, "<p>Peter</p>")
		assert.Contains(t, xhtml, `xmlns="http://www.w3.org/1999/xhtml"`)
	})

	t.Run("contained unwrapped", func(t *testing.T) {
		c, ok := node.Find(tree, "contained")
		require.True(t, ok)
		assert.Equal(t, "Basic", c.ResourceType())
		_, ok = node.Find(c, "id")
		assert.True(t, ok)
	})

	t.Run("id attribute and primitive extensions", func(t *testing.T) {
		name, ok := node.Find(tree, "name")
		require.True(t, ok)
		children := name.Children()
		require.Len(t, children, 3)
		assert.Equal(t, "id", children[0].Name())

		given := children[1]
		text, _ := given.Text()
		assert.Equal(t, "Peter", text)
		ext, ok := node.Find(given, "extension")
		require.True(t, ok)
		url, ok := node.Find(ext, "url")
		require.True(t, ok)
		u, _ := url.Text()
		assert.Equal(t, "http://example.org/ext", u)
	})
}

func TestParse_Errors(t *testing.T) {
	_, err := ParseBytes([]byte(""))
	assert.Error(t, err)

	_, err = ParseBytes([]byte("<Patient><id value='x'>"))
	assert.Error(t, err)
}
