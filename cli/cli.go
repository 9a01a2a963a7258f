package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"

	"btreekit/btree"
)

var (
	errorColor = color.New(color.FgRed)
	noteColor  = color.New(color.FgYellow)
	okColor    = color.New(color.FgGreen)
)

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// Cli drives a tree from a line-oriented session. Commands run under a mutex so
// Stats can be called from another goroutine, e.g. a metrics scrape.
type Cli struct {
	reader     LineReader
	out        io.Writer
	mu         sync.Mutex
	tree       *btree.BTree[int, string]
	visualizer *btree.Visualizer[int, string]
}

func NewCli(r LineReader, out io.Writer, t *btree.BTree[int, string]) *Cli {
	v := &btree.Visualizer[int, string]{
		Tree: t,
	}
	return &Cli{reader: r, out: out, tree: t, visualizer: v}
}

// Start reads commands until EXIT, end of input or an interrupt on an empty line.
func (c *Cli) Start() error {
	c.printHelp()
	for {
		line, err := c.reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		if !c.processInput(line) {
			return nil
		}
	}
}

// Stats returns the tree's statistics.
func (c *Cli) Stats() btree.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.Stats()
}

// Seed inserts n generated records and returns how many keys were new.
func (c *Cli) Seed(n int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seed(n)
}

func (c *Cli) seed(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	keys, err := faker.RandomInt(0, 10*n, n)
	if err != nil {
		return 0, fmt.Errorf("generate keys: %w", err)
	}

	added := 0
	for _, k := range keys {
		if c.tree.Insert(k, faker.Word()+faker.Word()) {
			added++
		}
	}
	return added, nil
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B-Tree CLI (max degree %d)

Available Commands:
  SET <key> [val] Insert a key-value pair into the B-Tree
  DEL <key>       Remove a key-value pair from the B-Tree
  GET <key>       Retrieve the value for key from the B-Tree
  HAS <key>       Report whether key is in the B-Tree
  TRAVERSE        Print all keys in order
  PRINT           Print the B-Tree level by level
  STATS           Print size, shape and rebalancing counters
  CHECK           Verify the B-Tree invariants
  SEED <n>        Insert n generated records
  HELP            Print this message
  EXIT            Terminate this session

`, c.tree.MaxDegree())
}

// processInput runs one command line and reports whether the session goes on.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	command := strings.ToLower(fields[0])
	switch command {
	default:
		errorColor.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "has":
		c.processHasCommand(fields[1:])
	case "traverse":
		fmt.Fprintln(c.out, c.tree)
	case "print":
		fmt.Fprintln(c.out, c.visualizer.Visualize())
	case "stats":
		c.printStats()
	case "check":
		c.processCheckCommand()
	case "seed":
		c.processSeedCommand(fields[1:])
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) parseKey(arg string) (int, bool) {
	key, err := strconv.Atoi(arg)
	if err != nil {
		errorColor.Fprintf(c.out, "Invalid key %q: keys are integers\n", arg)
		return 0, false
	}
	return key, true
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: SET <key> [value]")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	if !c.tree.Insert(key, strings.Join(args[1:], " ")) {
		noteColor.Fprintln(c.out, "Key existed, value replaced.")
	}
	fmt.Fprintln(c.out, c.tree)
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	if c.tree.Len() == 0 {
		noteColor.Fprintln(c.out, "The tree is empty.")
		return
	}
	if !c.tree.Delete(key) {
		noteColor.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, c.tree)
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	val, err := c.tree.Find(key)
	if err != nil {
		noteColor.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, val)
}

func (c *Cli) processHasCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: HAS <key>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	fmt.Fprintln(c.out, c.tree.Has(key))
}

func (c *Cli) printStats() {
	s := c.tree.Stats()
	fmt.Fprintf(c.out, "keys=%d height=%d nodes=%d\n", s.Keys, s.Height, s.Nodes)
	fmt.Fprintf(c.out, "splits=%d merges=%d borrows(prev)=%d borrows(next)=%d root(grow)=%d root(shrink)=%d\n",
		s.Splits, s.Merges, s.BorrowsFromPrev, s.BorrowsFromNext, s.RootGrowths, s.RootShrinks)
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Verify(); err != nil {
		errorColor.Fprintln(c.out, err)
		return
	}
	okColor.Fprintln(c.out, "OK")
}

func (c *Cli) processSeedCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEED <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		errorColor.Fprintf(c.out, "Invalid count %q\n", args[0])
		return
	}

	added, err := c.seed(n)
	if err != nil {
		errorColor.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Inserted %d new keys, %d total.\n", added, c.tree.Len())
}
