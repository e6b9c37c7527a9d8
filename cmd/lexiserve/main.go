/*
Package main runs the LexiServe word-game scoring service.

LexiServe validates word submissions for language-learning puzzles, scores
them against per-language level rules, and suggests valid words the player
missed. It operates as a MessagePack IPC server over stdin/stdout, or as an
interactive CLI for inspecting dictionaries and levels.

# Usage

Start the server with the default data directory:

	lexiserve

Use a custom data directory and enable debug logging:

	lexiserve -data /path/to/data -d

Run in CLI mode for manual scoring:

	lexiserve -c

The data directory holds one word list per language (words_en.txt,
words_fr.txt, ...) and one level file per language (levels_en.toml, ...).
Both are loaded synchronously at startup; a malformed file drops only that
language. After the load barrier the stores are immutable and requests are
served concurrently without locking.

# Configuration

Runtime settings live in a TOML file, resolved from -config or
<data>/config.toml:

	[server]
	max_words_per_request = 128
	max_word_len = 60

	[game]
	suggestion_limit = 5

	[dict]
	data_dir = "data"

# IPC Protocol

Requests and responses are msgpack values on stdin/stdout:

	{"id": "r1", "cmd": "score", "lang": "en", "level": 1, "words": ["apple", "ant"]}
	{"id": "r1", "level": 1, "success": true, "required": 2, "results": {...},
	 "someWords": [...], "score": 20, "total_found": 2, "type": "findWords"}

See pkg/server for the full message catalogue.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lexiserve/lexiserve/internal/cli"
	"github.com/lexiserve/lexiserve/internal/utils"
	"github.com/lexiserve/lexiserve/pkg/config"
	"github.com/lexiserve/lexiserve/pkg/dictionary"
	"github.com/lexiserve/lexiserve/pkg/game"
	"github.com/lexiserve/lexiserve/pkg/levels"
	"github.com/lexiserve/lexiserve/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "lexiserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Exiting...")
		os.Exit(0)
	}()
}

// main wires config, stores, and the chosen front end together; the logic
// lives in the packages it calls.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "data/", "Directory containing word lists and level files")
	configPath := flag.String("config", "", "Path to config.toml (default: <data>/config.toml)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI instead of server mode")
	noFilter := flag.Bool("no-filter", false, "Disable input word filtering in CLI mode")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	resolvedDataDir := utils.ResolveDataDir(*dataDir)
	cfg, cfgPath := config.LoadConfigWithPriority(*configPath, resolvedDataDir)
	cfg.Validate()
	if cfgPath != "" {
		log.Debugf("Config loaded from %s", cfgPath)
	}
	if cfg.Dict.DataDir != "" && *dataDir == "data/" {
		resolvedDataDir = utils.ResolveDataDir(cfg.Dict.DataDir)
	}

	// Initialization barrier: both stores are fully loaded before any
	// request is read.
	dict := dictionary.NewStore()
	loadedLangs, err := dictionary.LoadDirectory(dict, resolvedDataDir)
	if err != nil {
		log.Fatalf("Failed to load dictionaries from %s: %v", resolvedDataDir, err)
	}
	log.Infof("Serving %d languages: %v", len(loadedLangs), loadedLangs)

	registry := levels.NewRegistry()
	if _, err := levels.LoadDirectory(registry, resolvedDataDir); err != nil {
		log.Fatalf("Failed to load level definitions from %s: %v", resolvedDataDir, err)
	}

	engine := game.NewEngine(dict, registry, cfg.Game.SuggestionLimit)

	if *cliMode {
		handler := cli.NewInputHandler(engine, *noFilter)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	srv := server.NewServer(engine, dict, registry, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printVersion writes a styled version banner to stderr.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("[ LexiServe ] word-game scoring service")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}
