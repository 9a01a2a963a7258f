package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"btreekit/btree"
	"btreekit/cli"
	"btreekit/logger"
	"btreekit/metrics"
)

var (
	maxDegree, seedNumRecords *int
	shouldSeed, runDemo       *bool
	verbose                   *bool
	metricsAddr               *string
)

func main() {
	setupFlags()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	tree, err := btree.New[int, string](*maxDegree, btree.WithLogger(logger.NewZap(log)))
	if err != nil {
		log.Fatal("create tree", zap.Error(err))
	}

	if *runDemo {
		cli.RunDemo(os.Stdout, tree)
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal("open terminal", zap.Error(err))
	}
	defer rl.Close()

	demo := cli.NewCli(rl, rl.Stdout(), tree)

	if *shouldSeed {
		added, err := demo.Seed(*seedNumRecords)
		if err != nil {
			log.Fatal("seed tree", zap.Error(err))
		}
		log.Info("seeded tree", zap.Int("records", added))
	}

	if *metricsAddr != "" {
		go serveMetrics(log, *metricsAddr, metrics.NewCollector("btree", demo.Stats))
	}

	if err := demo.Start(); err != nil {
		log.Fatal("read command", zap.Error(err))
	}
}

func serveMetrics(log *zap.Logger, addr string, c *metrics.Collector) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(c))
	log.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("metrics server stopped", zap.Error(err))
	}
}

// newLogger logs everything in development mode, and only warnings and errors otherwise
// so the tree's informational messages do not interleave with the prompt.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func setupFlags() {
	maxDegree = flag.Int("degree", 4, "Maximum number of children per node (at least 3).")
	runDemo = flag.Bool("demo", false, "Run a fixed insert/delete scenario and exit.")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
	metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090.")
	verbose = flag.Bool("verbose", false, "Log informational messages.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
