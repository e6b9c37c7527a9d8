// Package cli handles command line input for scoring submissions manually,
// useful for checking level data and dictionaries without a client.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lexiserve/lexiserve/internal/logger"
	"github.com/lexiserve/lexiserve/internal/utils"
	"github.com/lexiserve/lexiserve/pkg/game"
)

// InputHandler reads submissions from stdin and prints scoring results.
type InputHandler struct {
	engine   *game.Engine
	noFilter bool
	log      *log.Logger
}

// NewInputHandler handles initialization of the InputHandler.
func NewInputHandler(engine *game.Engine, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:   engine,
		noFilter: noFilter,
		log:      logger.New("cli"),
	}
}

// Start begins the interface loop.
// Each line is `<lang> <level> <word> [word ...]`; the scored result is
// printed back. Loop terminates when stdin closes.
func (h *InputHandler) Start() error {
	h.log.Print("LexiServe CLI")
	h.log.Print("enter: <lang> <level> <word> [word ...]  (Ctrl+C to exit)")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput parses and scores a single submission line.
func (h *InputHandler) handleInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		h.log.Error("Need at least a language, a level number and one word")
		return
	}

	lang := fields[0]
	level, err := strconv.Atoi(fields[1])
	if err != nil {
		h.log.Errorf("Invalid level number: %s", fields[1])
		return
	}
	words := fields[2:]

	if !h.noFilter {
		for _, word := range words {
			if !utils.IsWordToken(word) {
				h.log.Errorf("Rejected input %q: not a word", word)
				return
			}
		}
	}

	start := time.Now()
	result, err := h.engine.Score(lang, level, words)
	if err != nil {
		h.log.Errorf("Scoring failed: %v", err)
		return
	}
	elapsed := time.Since(start)

	printed := make([]string, 0, len(result.Results))
	for word, valid := range result.Results {
		printed = append(printed, fmt.Sprintf("%s=%v", word, valid))
	}
	sort.Strings(printed)

	h.log.Printf("level %d [%s]: score=%.1f found=%d/%d success=%v (%s)",
		result.Level, result.Type, result.Score, result.TotalFound,
		result.Required, result.Success, elapsed)
	h.log.Printf("  words: %s", strings.Join(printed, " "))
	if len(result.SomeWords) > 0 {
		h.log.Printf("  try also: %s", strings.Join(result.SomeWords, ", "))
	}
}
