/*
Package server implements msgpack IPC for the word-game scoring service.

The protocol is request/response over stdin/stdout. Clients send structured
msgpack messages, each carrying an ID echoed back in the response, and a
cmd field selecting the operation:

	{"id": "req_001", "cmd": "check_language", "lang": "en"}
	{"id": "req_002", "cmd": "score", "lang": "en", "level": 1, "words": ["apple", "ant"]}
	{"id": "req_003", "cmd": "languages"}
	{"id": "req_004", "cmd": "health"}

A score response bundles the per-word validity map, the total score and
found count, the success flag against the level's required threshold, and
up to five alternative words the player missed:

	{"id": "req_002", "level": 1, "success": true, "required": 2,
	 "results": {"apple": true, "ant": true}, "someWords": ["able", ...],
	 "score": 20, "total_found": 2, "type": "findWords"}

Failures come back as {"id", "e", "c"} with 400-class codes for client
input errors, 404-class for missing levels or misconfigured steps, and 500
otherwise. The server itself carries no HTTP vocabulary; the codes are a
convention for the embedding layer to map onto its own surface.
*/
package server

import "github.com/lexiserve/lexiserve/pkg/game"

// Commands understood by the request loop.
const (
	CmdCheckLanguage = "check_language"
	CmdScore         = "score"
	CmdLanguages     = "languages"
	CmdHealth        = "health"
)

// Request is the envelope for every incoming message. Fields beyond ID and
// Cmd apply only to the commands that need them.
type Request struct {
	ID    string   `msgpack:"id"`
	Cmd   string   `msgpack:"cmd"`
	Lang  string   `msgpack:"lang,omitempty"`
	Level int      `msgpack:"level,omitempty"`
	Words []string `msgpack:"words,omitempty"`
}

// CheckLanguageResponse answers a check_language request.
type CheckLanguageResponse struct {
	ID        string `msgpack:"id"`
	Supported bool   `msgpack:"supported"`
}

// ScoreResponse wraps a scoring result with the request ID.
type ScoreResponse struct {
	ID string `msgpack:"id"`
	game.Result
}

// LanguageInfo describes one loaded language.
type LanguageInfo struct {
	Code       string `msgpack:"code"`
	WordCount  int    `msgpack:"word_count"`
	LevelCount int    `msgpack:"level_count"`
}

// LanguagesResponse lists everything the process serves.
type LanguagesResponse struct {
	ID        string         `msgpack:"id"`
	Languages []LanguageInfo `msgpack:"languages"`
}

// HealthResponse answers a health probe.
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
