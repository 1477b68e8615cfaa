// apps/go-server/internal/httpserver/routes_tiles.go
//
// Read-only endpoints over the tile codec, the corpus and the keyboard gate:
//   - GET  /tiles                 → full symbol/tile table
//   - GET  /tiles/encode/{symbol} → tile id for one symbol
//   - GET  /tiles/decode/{tileId} → symbol for one tile id
//   - GET  /corpus                → paged corpus (?offset=&limit=)
//   - GET  /corpus/{guess}        → rule check + corpus lookup for one guess
//   - POST /input/check           → is the next key disabled?
//   - POST /input/keys            → disabled flag for every key

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/turdle/apps/go-server/internal/tiles"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// mountTiles registers codec, corpus and input routes.
func (s *Server) mountTiles(r chi.Router) {
	r.Route("/tiles", func(r chi.Router) {
		r.Get("/", s.handleTiles)
		r.Get("/encode/{symbol}", s.handleEncode)
		r.Get("/decode/{tileId}", s.handleDecode)
	})
	r.Route("/corpus", func(r chi.Router) {
		r.Get("/", s.handleCorpus)
		r.Get("/{guess}", s.handleCorpusLookup)
	})
	r.Route("/input", func(r chi.Router) {
		r.Post("/check", s.handleInputCheck)
		r.Post("/keys", s.handleInputKeys)
	})
}

func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"alphabet":   tiles.Alphabet,
		"colorCodes": string(tiles.ColorCodes[:]),
		"tiles":      tiles.Tiles(),
	})
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	sym, ok := singleSymbol(chi.URLParam(r, "symbol"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_symbol")
		return
	}
	id, err := tiles.TileID(sym)
	if err != nil {
		writeError(w, http.StatusBadRequest, tileErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"symbol": string(tiles.Normalize(sym)), "tileId": id})
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tileId")
	sym, err := tiles.Symbol(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, tileErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"symbol": string(sym), "tileId": id})
}

// corpusPage is returned by GET /corpus.
type corpusPage struct {
	Total  int      `json:"total"`
	Offset int      `json:"offset"`
	Words  []string `json:"words"`
}

func (s *Server) handleCorpus(w http.ResponseWriter, r *http.Request) {
	if s.corpus == nil {
		writeError(w, http.StatusServiceUnavailable, "corpus_unavailable")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		writeError(w, http.StatusBadRequest, "invalid_offset")
		return
	}
	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil || limit < 1 || limit > maxPageSize {
		writeError(w, http.StatusBadRequest, "invalid_limit")
		return
	}
	writeJSON(w, http.StatusOK, corpusPage{
		Total:  s.corpus.Len(),
		Offset: offset,
		Words:  s.corpus.Slice(offset, limit),
	})
}

// lookupRes is returned by GET /corpus/{guess}.
type lookupRes struct {
	Guess    string `json:"guess"`
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason,omitempty"`
	InCorpus bool   `json:"inCorpus"`
	Index    *int   `json:"index,omitempty"`
	Tiles    string `json:"tiles,omitempty"`
	Frames   []int  `json:"frames,omitempty"`
}

func (s *Server) handleCorpusLookup(w http.ResponseWriter, r *http.Request) {
	guess := strings.ToUpper(chi.URLParam(r, "guess"))
	res := lookupRes{Guess: guess}
	if err := tiles.CheckGuess(guess); err != nil {
		res.Reason = err.Error()
	} else {
		res.Valid = true
	}
	if frames, err := tiles.FrameSequence(guess); err == nil {
		res.Frames = frames
		res.Tiles, _ = tiles.RenderGuess(guess)
	}
	if s.corpus != nil {
		if i, ok := s.corpus.Index(guess); ok {
			res.InCorpus, res.Index = true, &i
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// inputReq is the payload for /input/check and /input/keys.
type inputReq struct {
	Partial   string `json:"partial"`
	Candidate string `json:"candidate"`
}

func (s *Server) handleInputCheck(w http.ResponseWriter, r *http.Request) {
	var req inputReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sym, ok := singleSymbol(req.Candidate)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_symbol")
		return
	}
	disabled, err := tiles.IsNextSymbolDisabled(req.Partial, sym)
	if err != nil {
		writeError(w, http.StatusBadRequest, tileErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"disabled": disabled})
}

func (s *Server) handleInputKeys(w http.ResponseWriter, r *http.Request) {
	var req inputReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	keys, err := tiles.DisabledKeys(req.Partial)
	if err != nil {
		writeError(w, http.StatusBadRequest, tileErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"partial": strings.ToUpper(req.Partial), "disabled": keys})
}

// tileErrorCode maps codec errors to stable API codes.
func tileErrorCode(err error) string {
	switch {
	case errors.Is(err, tiles.ErrInvalidPartialGuess):
		return "invalid_partial_guess"
	case errors.Is(err, tiles.ErrInvalidTileID):
		return "invalid_tile_id"
	case errors.Is(err, tiles.ErrInvalidSymbol):
		return "invalid_symbol"
	default:
		return "bad_request"
	}
}

// singleSymbol returns the only rune in s.
func singleSymbol(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// queryInt reads an integer query parameter, def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
