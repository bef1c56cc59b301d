package server

import (
	"errors"
	"net/http"
	"strconv"

	"cod-tracker/internal/catalog"
	"cod-tracker/internal/database"
	"cod-tracker/internal/domain"
	"cod-tracker/internal/metrics"
	"cod-tracker/internal/resolver"
	"cod-tracker/internal/service"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

type TrackerServer struct {
	resolver *resolver.Resolver[database.Table]
	statsSvc *service.StatsService
	matchSvc *service.MatchService
	logger   zerolog.Logger
}

func NewTrackerServer(r *resolver.Resolver[database.Table], statsSvc *service.StatsService, matchSvc *service.MatchService, logger zerolog.Logger) *TrackerServer {
	return &TrackerServer{resolver: r, statsSvc: statsSvc, matchSvc: matchSvc, logger: logger}
}

func (s *TrackerServer) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/partitions", s.GetPartitions)
	mux.HandleFunc("GET /api/stats", s.GetStats)
	mux.HandleFunc("GET /api/players/{uno}/matches", s.GetPlayerMatches)
	mux.HandleFunc("GET /api/game-modes", s.GetGameModes)
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameModeResponse struct {
	GameMode    domain.GameMode  `json:"game_mode"`
	Game        domain.GameTitle `json:"game"`
	Mode        domain.Mode      `json:"mode"`
	Fullmatches bool             `json:"fullmatches"`
	Years       []domain.Year    `json:"years,omitempty"`
}

func (s *TrackerServer) GetPartitions(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	refs := s.resolver.ResolveRequest(req)
	metrics.RecordResolution(req.Label(), string(req.Source), len(refs))

	partitions := make([]service.Partition, len(refs))
	for i, ref := range refs {
		partitions[i] = toPartition(ref)
	}
	s.writeJSON(w, http.StatusOK, partitions)
}

func (s *TrackerServer) GetStats(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	summary, err := s.statsSvc.Stats(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *TrackerServer) GetPlayerMatches(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit <= 0 {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
	}

	matches, err := s.matchSvc.PlayerMatches(r.Context(), r.PathValue("uno"), req, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, matches)
}

func (s *TrackerServer) GetGameModes(w http.ResponseWriter, r *http.Request) {
	var resp []gameModeResponse
	for _, g := range domain.GameModes() {
		game, mode := g.Split()
		item := gameModeResponse{
			GameMode:    g,
			Game:        game,
			Mode:        mode,
			Fullmatches: g.SupportsFullmatches(),
		}
		if domain.SupportsYear(g, domain.SourceMain) {
			item.Years = domain.Years()
		}
		resp = append(resp, item)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// parseRequest reads game_mode, or game and mode, plus source and year.
// Absent values default to every game mode and the matches source.
func parseRequest(r *http.Request) (resolver.Request, error) {
	q := r.URL.Query()
	req := resolver.Request{Source: domain.SourceMatches}

	var err error
	switch {
	case q.Get("game_mode") != "":
		if req.GameMode, err = domain.ParseGameMode(q.Get("game_mode")); err != nil {
			return req, err
		}
	case q.Get("game") != "" || q.Get("mode") != "":
		req.Game, req.Mode = domain.GameAll, domain.ModeAll
		if v := q.Get("game"); v != "" {
			if req.Game, err = domain.ParseGameTitle(v); err != nil {
				return req, err
			}
		}
		if v := q.Get("mode"); v != "" {
			if req.Mode, err = domain.ParseMode(v); err != nil {
				return req, err
			}
		}
	default:
		req.GameMode = domain.GameModeAll
	}

	if v := q.Get("source"); v != "" {
		if req.Source, err = domain.ParseSource(v); err != nil {
			return req, err
		}
	}
	if req.Year, err = domain.ParseYear(q.Get("year")); err != nil {
		return req, err
	}
	return req, nil
}

func toPartition(ref catalog.PartitionRef[database.Table]) service.Partition {
	return service.Partition{
		GameMode: ref.GameMode,
		Source:   ref.Source,
		Year:     ref.Year,
		Table:    ref.CatalogName,
	}
}

func (s *TrackerServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidDimension) {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (s *TrackerServer) writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to write JSON response")
	}
}
