package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btreekit/btree"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type scriptReader struct {
	lines []string
	err   error
}

func (s *scriptReader) Readline() (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func setup(t *testing.T, lines ...string) (*Cli, *bytes.Buffer, *btree.BTree[int, string]) {
	t.Helper()
	tree, err := btree.New[int, string](4)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return NewCli(&scriptReader{lines: lines}, out, tree), out, tree
}

func TestSetGetDel(t *testing.T) {
	c, out, tree := setup(t)

	for _, k := range []string{"10", "20", "5", "6"} {
		require.True(t, c.processInput("SET "+k+" value "+k))
	}
	assert.Equal(t, 4, tree.Len())
	assert.Contains(t, out.String(), "5 6 10 20\n[10]\n[5 6] [20]\n")

	out.Reset()
	c.processInput("get 6")
	assert.Equal(t, "value 6\n", out.String())

	out.Reset()
	c.processInput("GET 7")
	assert.Equal(t, "Key not found.\n", out.String())

	out.Reset()
	c.processInput("DEL 6")
	assert.Equal(t, "5 10 20\n[10]\n[5] [20]\n", out.String())

	out.Reset()
	c.processInput("DEL 6")
	assert.Equal(t, "Key not found.\n", out.String())

	out.Reset()
	c.processInput("HAS 20")
	c.processInput("HAS 21")
	assert.Equal(t, "true\nfalse\n", out.String())
}

func TestSetExistingKey(t *testing.T) {
	c, out, tree := setup(t)
	c.processInput("SET 1 a")
	out.Reset()

	c.processInput("SET 1 b")

	assert.True(t, strings.HasPrefix(out.String(), "Key existed, value replaced.\n"))
	val, err := tree.Find(1)
	require.NoError(t, err)
	assert.Equal(t, "b", val)
}

func TestDeleteFromEmptyTree(t *testing.T) {
	c, out, _ := setup(t)

	c.processInput("DEL 1")

	assert.Equal(t, "The tree is empty.\n", out.String())
}

func TestUsageAndInvalidInput(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"SET", "Usage: SET <key> [value]\n"},
		{"DEL", "Usage: DEL <key>\n"},
		{"GET 1 2", "Usage: GET <key>\n"},
		{"HAS", "Usage: HAS <key>\n"},
		{"SEED", "Usage: SEED <n>\n"},
		{"SEED many", "Invalid count \"many\"\n"},
		{"SET abc 1", "Invalid key \"abc\": keys are integers\n"},
		{"frobnicate", "Unknown command \"frobnicate\"\n"},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c, out, _ := setup(t)
			assert.True(t, c.processInput(tt.line))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestTraversePrintStatsCheck(t *testing.T) {
	c, out, _ := setup(t)
	for _, k := range []string{"10", "20", "5", "6", "12", "30", "7", "17"} {
		c.processInput("SET " + k)
	}
	out.Reset()

	c.processInput("TRAVERSE")
	c.processInput("PRINT")
	c.processInput("STATS")
	c.processInput("CHECK")

	assert.Equal(t, "5 6 7 10 12 17 20 30\n"+
		"[10 20]\n[5 6 7] [12 17] [30]\n"+
		"keys=8 height=2 nodes=4\n"+
		"splits=2 merges=0 borrows(prev)=0 borrows(next)=0 root(grow)=1 root(shrink)=0\n"+
		"OK\n", out.String())
}

func TestSeed(t *testing.T) {
	c, out, tree := setup(t)

	added, err := c.Seed(200)
	require.NoError(t, err)
	assert.Equal(t, 200, added)
	assert.Equal(t, 200, tree.Len())
	require.NoError(t, tree.Verify())

	c.processInput("SEED 0")
	assert.Equal(t, "Inserted 0 new keys, 200 total.\n", out.String())

	assert.Equal(t, 200, c.Stats().Keys)
}

func TestStart(t *testing.T) {
	tree, err := btree.New[int, string](4)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	c := NewCli(&scriptReader{lines: []string{"SET 1 one", "EXIT", "SET 2 two"}}, out, tree)

	require.NoError(t, c.Start())

	assert.Contains(t, out.String(), "B-Tree CLI (max degree 4)")
	assert.Equal(t, 1, tree.Len())
}

func TestStartStopsOnEOFAndInterrupt(t *testing.T) {
	tree, err := btree.New[int, string](4)
	require.NoError(t, err)

	c := NewCli(&scriptReader{lines: []string{"SET 1"}}, io.Discard, tree)
	require.NoError(t, c.Start())

	c = NewCli(&scriptReader{err: readline.ErrInterrupt}, io.Discard, tree)
	require.NoError(t, c.Start())

	boom := errors.New("boom")
	c = NewCli(&scriptReader{err: boom}, io.Discard, tree)
	assert.ErrorIs(t, c.Start(), boom)
}

func TestRunDemo(t *testing.T) {
	tree, err := btree.New[int, string](4)
	require.NoError(t, err)
	out := &bytes.Buffer{}

	RunDemo(out, tree)

	want := `Traversal of the constructed tree is 5 6 7 10 12 17 20 30
Traversal of the tree after removing 6 is 5 7 10 12 17 20 30
The key 13 is not present in the tree
Traversal of the tree after removing 13 is 5 7 10 12 17 20 30
Traversal of the tree after removing 7 is 5 10 12 17 20 30
The key 4 is not present in the tree
Traversal of the tree after removing 4 is 5 10 12 17 20 30
The key 2 is not present in the tree
Traversal of the tree after removing 2 is 5 10 12 17 20 30
The key 16 is not present in the tree
Traversal of the tree after removing 16 is 5 10 12 17 20 30
`
	assert.Equal(t, want, out.String())
}
