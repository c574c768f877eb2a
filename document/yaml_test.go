package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaksimchuk/anakit/document"
)

// anchoredYAML exercises anchors referenced from several keys; decoding
// must yield one shared node per anchor.
const anchoredYAML = `
responseTasks: &responseTasks
    responseMaker: &responseMakerTaskName "AliJetResponseMaker_{cent}histos"
    jetHPerformance: &jetHPerformanceTaskName ""
responseTaskName: &responseTaskName [""]
pythiaInfoAfterEventSelectionTaskName: *responseTaskName
test1: &test1
- val1
- val2
test2: *test1
`

// TestParse_ScalarKinds verifies that YAML scalars decode to their native
// Go payloads.
func TestParse_ScalarKinds(t *testing.T) {
	node, err := document.Parse([]byte("int: 3\nfloat: 3.14\nstr: \"hello\"\nflag: true\nnothing: null\n"))
	require.NoError(t, err)
	require.Equal(t, document.KindMapping, node.Kind())

	get := func(key string) any {
		child, ok := node.Get(key)
		require.True(t, ok, "key %q must be present", key)

		return child.Value()
	}
	assert.Equal(t, 3, get("int"))
	assert.Equal(t, 3.14, get("float"))
	assert.Equal(t, "hello", get("str"))
	assert.Equal(t, true, get("flag"))
	assert.Nil(t, get("nothing"))
}

// TestParse_KeyOrder verifies mapping keys keep their document order.
func TestParse_KeyOrder(t *testing.T) {
	node, err := document.Parse([]byte(anchoredYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"responseTasks",
		"responseTaskName",
		"pythiaInfoAfterEventSelectionTaskName",
		"test1",
		"test2",
	}, node.Keys())
}

// TestParse_AliasIdentity verifies that an alias resolves to the same
// *Node as its anchor: mutating through one key is observable through the
// other.
func TestParse_AliasIdentity(t *testing.T) {
	node, err := document.Parse([]byte(anchoredYAML))
	require.NoError(t, err)

	test1, ok := node.Get("test1")
	require.True(t, ok)
	test2, ok := node.Get("test2")
	require.True(t, ok)
	assert.Same(t, test1, test2, "alias must share its anchor's node")

	// Mutation through one key is visible through the other.
	test1.Append(document.Scalar("val3"))
	assert.Equal(t, 3, test2.Len())
	assert.Equal(t, "val3", test2.Item(2).Value())

	// The anchored sequence referenced from two top-level keys is shared too.
	rtn, _ := node.Get("responseTaskName")
	pythia, _ := node.Get("pythiaInfoAfterEventSelectionTaskName")
	assert.Same(t, rtn, pythia)
}

// TestParse_InvalidYAML verifies malformed input errors with
// ErrInvalidYAML and empty input with ErrEmptyDocument.
func TestParse_InvalidYAML(t *testing.T) {
	_, err := document.Parse([]byte("foo: [unclosed"))
	assert.ErrorIs(t, err, document.ErrInvalidYAML)

	_, err = document.Parse(nil)
	assert.ErrorIs(t, err, document.ErrEmptyDocument)
}

// TestLoadFile verifies the file path round-trips through Parse.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(anchoredYAML), 0o644))

	fromFile, err := document.LoadFile(path)
	require.NoError(t, err)
	fromBytes, err := document.Parse([]byte(anchoredYAML))
	require.NoError(t, err)

	assert.True(t, document.Equal(fromFile, fromBytes), "file and byte parses must be structurally equal")

	_, err = document.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
