package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lexiserve/lexiserve/pkg/config"
	"github.com/lexiserve/lexiserve/pkg/dictionary"
	"github.com/lexiserve/lexiserve/pkg/game"
	"github.com/lexiserve/lexiserve/pkg/levels"
)

// Server handles the IPC for word-game scoring.
type Server struct {
	engine   *game.Engine
	dict     *dictionary.Store
	registry *levels.Registry
	cfg      *config.Config
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
}

// NewServer creates a scoring server using stdin/stdout for IPC.
func NewServer(engine *game.Engine, dict *dictionary.Store, registry *levels.Registry, cfg *config.Config) *Server {
	return newServerWithIO(engine, dict, registry, cfg, os.Stdin, os.Stdout)
}

func newServerWithIO(engine *game.Engine, dict *dictionary.Store, registry *levels.Registry, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:   engine,
		dict:     dict,
		registry: registry,
		cfg:      cfg,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
	}
}

// Start begins the request loop. It returns nil when the client closes the
// stream and the read error otherwise.
func (s *Server) Start() error {
	log.Debug("Starting scoring server")

	s.send(HealthResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request by command.
func (s *Server) handleRequest(request Request) {
	switch request.Cmd {
	case CmdCheckLanguage:
		s.handleCheckLanguage(request)
	case CmdScore:
		s.handleScore(request)
	case CmdLanguages:
		s.handleLanguages(request)
	case CmdHealth:
		s.send(HealthResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown command: %s", request.Cmd), 400)
	}
}

func (s *Server) handleCheckLanguage(request Request) {
	if request.Lang == "" {
		s.sendError(request.ID, "missing 'lang' parameter", 400)
		return
	}
	s.send(CheckLanguageResponse{
		ID:        request.ID,
		Supported: s.engine.Supports(request.Lang),
	})
}

// handleScore validates request bounds, runs the engine, and maps the
// typed failures onto wire codes.
func (s *Server) handleScore(request Request) {
	if request.Lang == "" {
		s.sendError(request.ID, "missing 'lang' parameter", 400)
		return
	}
	if request.Level <= 0 {
		s.sendError(request.ID, "missing or invalid 'level' parameter", 400)
		return
	}
	if len(request.Words) > s.cfg.Server.MaxWordsPerRequest {
		s.sendError(request.ID, fmt.Sprintf("too many words: %d exceeds limit of %d",
			len(request.Words), s.cfg.Server.MaxWordsPerRequest), 400)
		return
	}
	for _, word := range request.Words {
		if len(word) > s.cfg.Server.MaxWordLen {
			s.sendError(request.ID, fmt.Sprintf("word exceeds maximum length of %d characters",
				s.cfg.Server.MaxWordLen), 400)
			return
		}
	}

	result, err := s.engine.Score(request.Lang, request.Level, request.Words)
	if err != nil {
		s.sendError(request.ID, err.Error(), errorCode(err))
		log.Debugf("Score request %s failed: %v", request.ID, err)
		return
	}
	s.send(ScoreResponse{ID: request.ID, Result: *result})
}

func (s *Server) handleLanguages(request Request) {
	codes := s.dict.Languages()
	sort.Strings(codes)

	infos := make([]LanguageInfo, 0, len(codes))
	for _, code := range codes {
		infos = append(infos, LanguageInfo{
			Code:       code,
			WordCount:  s.dict.WordCount(code),
			LevelCount: s.registry.LevelCount(code),
		})
	}
	s.send(LanguagesResponse{ID: request.ID, Languages: infos})
}

// errorCode maps the core's typed failures onto wire codes. Language and
// step problems are terminal either way; nothing here is retryable.
func errorCode(err error) int {
	switch {
	case errors.Is(err, dictionary.ErrLanguageNotSupported):
		return 400
	case errors.Is(err, levels.ErrLevelNotFound):
		return 404
	case errors.Is(err, game.ErrStepNotApplicable):
		return 404
	default:
		return 500
	}
}

// send encodes one response onto the stream.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
