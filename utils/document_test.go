package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nonprofit-scraper/internal/types"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(`<html><body>
		<ul>
			<li class="item"><a href="/one">  First
				item </a></li>
			<li class="item"><a>Second</a></li>
		</ul>
	</body></html>`)
	require.NoError(t, err)

	items := doc.Find("li.item")
	require.Len(t, items, 2)

	link, ok := items[0].First("a")
	require.True(t, ok)
	assert.Equal(t, "First item", link.Text())

	href, ok := link.Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "/one", href)

	second, ok := items[1].First("a")
	require.True(t, ok)
	_, ok = second.Attr("href")
	assert.False(t, ok)

	_, ok = doc.First("table")
	assert.False(t, ok)
	assert.Empty(t, doc.Find("table"))
}

func TestNodeText_KeepsLineBreaks(t *testing.T) {
	doc, err := ParseDocument(`<div id="body">
		<p>First   paragraph.</p><p>Second <b>bold</b>paragraph.</p>
		Line one<br>Line two<br><br>
		<ul><li>one</li><li>two</li></ul>
		<script>ignored()</script>
	</div>`)
	require.NoError(t, err)

	body, ok := doc.First("#body")
	require.True(t, ok)
	assert.Equal(t, "First paragraph.\nSecond boldparagraph.\nLine one\nLine two\none\ntwo", body.Text())

	empty, err := ParseDocument(`<div id="empty"> <br> <p> </p> </div>`)
	require.NoError(t, err)
	node, ok := empty.First("#empty")
	require.True(t, ok)
	assert.Empty(t, node.Text())
}

func TestWriteJSONFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgs.json")

	first := []types.OrgRecord{{Name: types.String("A")}, {Name: types.String("B")}}
	require.NoError(t, WriteJSONFile(path, first))

	second := []types.OrgRecord{{Name: types.String("C"), ReviewCount: types.Int(3)}}
	require.NoError(t, WriteJSONFile(path, second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"C\",\n    \"reviewCount\": 3\n  }\n]", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteJSONFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "orgs.json")

	err := WriteJSONFile(path, []types.OrgRecord{})

	assert.Error(t, err)
}
