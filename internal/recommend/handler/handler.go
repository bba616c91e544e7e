package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"basket-service/internal/config"
	"basket-service/internal/middleware"
	"basket-service/internal/recommend/catalog"
	"basket-service/internal/recommend/service"
)

type suggestRequest struct {
	Query    string   `json:"query"`
	Limit    int      `json:"limit,omitempty"`
	MinScore *float64 `json:"min_score,omitempty"`
}

type suggestionView struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type suggestResponse struct {
	Query       string           `json:"query"`
	Suggestions []suggestionView `json:"suggestions"`
}

type resolveRequest struct {
	Names []string `json:"names"`
}

type resolveResponse struct {
	IDs []int `json:"ids"`
}

type recommendRequest struct {
	IDs []int `json:"ids"`
}

type recommendResponse struct {
	IDs   []int    `json:"ids"`
	Names []string `json:"names"`
}

// Suggest returns fuzzy candidates for one typed product name. An empty
// suggestion list is a 200: "no match" is an outcome the UI branches on, not
// an error.
func Suggest(res *service.Resolver, cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req suggestRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		limit := req.Limit
		if limit <= 0 {
			limit = cfg.SuggestLimit
		}
		minScore := cfg.SuggestMinScore
		if req.MinScore != nil {
			minScore = *req.MinScore
		}

		matches := res.Suggest(req.Query, limit, minScore)
		views := make([]suggestionView, 0, len(matches))
		for _, m := range matches {
			views = append(views, suggestionView{Name: service.DisplayName(m.Name), Score: m.Score})
		}
		writeJSON(w, http.StatusOK, suggestResponse{Query: req.Query, Suggestions: views})

		lg := reqLogger(logger, r)
		lg.Debug().
			Str("query", req.Query).
			Int("limit", limit).
			Float64("min_score", minScore).
			Int("matches", len(views)).
			Msg("suggest")
	}
}

// Resolve maps disambiguated names back to eligible product ids. Unknown
// names are dropped, so the id list may be shorter than the input.
func Resolve(res *service.Resolver, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resolveRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		ids := res.ResolveToIDs(req.Names)
		if ids == nil {
			ids = []int{}
		}
		writeJSON(w, http.StatusOK, resolveResponse{IDs: ids})

		lg := reqLogger(logger, r)
		lg.Debug().
			Int("names", len(req.Names)).
			Int("resolved", len(ids)).
			Msg("resolve")
	}
}

// Recommend matches the basket against the rule index and returns the
// consequent of the most specific matching rule. Empty ids/names mean "no
// recommendation", still a 200. The basket cap guards the exponential subset
// enumeration behind Match.
func Recommend(cat *catalog.Catalog, cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if len(req.IDs) > cfg.MaxBasketItems {
			writeError(w, http.StatusBadRequest, "basket too large")
			return
		}

		rhs := service.Match(req.IDs, cat.Index)
		names := service.IDsToNames(rhs, cat)
		if rhs == nil {
			rhs = []int{}
		}
		if names == nil {
			names = []string{}
		}
		writeJSON(w, http.StatusOK, recommendResponse{IDs: rhs, Names: names})

		lg := reqLogger(logger, r)
		lg.Debug().
			Int("basket", len(req.IDs)).
			Int("recommended", len(rhs)).
			Msg("recommend")
	}
}

// reqLogger binds the request id the middleware stored in the context, so
// handler log lines correlate with the access log.
func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}
