package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli"
	"github.com/zakarianasim073/construction-project-monitoring/internal/insight"
	"github.com/zakarianasim073/construction-project-monitoring/internal/ledger"
	"github.com/zakarianasim073/construction-project-monitoring/internal/llm"
	"github.com/zakarianasim073/construction-project-monitoring/internal/seed"
	"github.com/zakarianasim073/construction-project-monitoring/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The store is memory-resident. It seeds with the demo portfolio unless
	// SITECTL_EMPTY is set, so the tool is explorable out of the box.
	var projects store.ProjectStore
	if empty, _ := strconv.ParseBool(os.Getenv("SITECTL_EMPTY")); empty {
		projects = store.NewMemoryStore()
	} else {
		projects = store.NewMemoryStore(seed.Projects()...)
	}

	app := &cli.App{
		Projects: projects,
		Ledger:   ledger.New(projects),
	}

	// Detect interactive terminal for form-based entry.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the insight service. Without a credential the client stays nil
	// and the service answers with its canned fallback.
	llmCfg := llm.LoadConfig()
	var client llm.Client
	if llmCfg.Configured() {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewGeminiClient(llmCfg, observer)
	}
	app.Insight = insight.NewService(client)

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
