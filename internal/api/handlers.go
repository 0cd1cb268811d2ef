package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"hotel-aggregator-go/internal/dataset"
	"hotel-aggregator-go/internal/logger"
	"hotel-aggregator-go/internal/types"
	"hotel-aggregator-go/internal/view"
)

// Upstream failures all surface as this one message.
const fetchFailedMessage = "failed to fetch reviews"

// Fetcher is the external data provider.
type Fetcher interface {
	FetchReviews(ctx context.Context, hotel string) ([]types.SourceRecord, error)
	FetchListings(ctx context.Context, query string) ([]types.BusinessListing, error)
}

type Server struct {
	fetcher      Fetcher
	state        *view.State
	log          *logger.Logger
	fetchTimeout time.Duration
}

func NewServer(f Fetcher, st *view.State, log *logger.Logger, fetchTimeout time.Duration) *Server {
	if fetchTimeout <= 0 {
		fetchTimeout = 40 * time.Second
	}
	return &Server{fetcher: f, state: st, log: log, fetchTimeout: fetchTimeout}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.health)
	mux.HandleFunc("/reviews", s.reviews)
	mux.HandleFunc("/reviews/search", s.searchReviews)
	mux.HandleFunc("/reviews/export", s.exportReviews)
	mux.HandleFunc("/listings", s.listings)
	return mux
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.log.WithRequest(r).Debug("health check")
	fmt.Fprint(w, "ok")
}

// reviews fetches a fresh batch, holds it for later searches and returns the view
// derived from this request's own batch and query.
func (s *Server) reviews(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "reviews")
	hotel := strings.TrimSpace(r.URL.Query().Get("hotel"))
	if hotel == "" {
		reqLog.Warn("missing hotel")
		http.Error(w, "missing hotel", http.StatusBadRequest)
		return
	}
	reqLog = reqLog.WithField("hotel", hotel)

	ctx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout)
	defer cancel()
	start := time.Now()
	batch, err := s.fetcher.FetchReviews(ctx, hotel)
	reqLog = reqLog.WithField("duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		reqLog.WithField("error", err.Error()).Warn("provider fetch failed")
		http.Error(w, fetchFailedMessage, http.StatusBadGateway)
		return
	}
	s.state.Replace(batch)

	v := view.BuildReviewView(batch, r.URL.Query().Get("q"))
	if len(v.DuplicateSources) > 0 {
		reqLog.WithField("duplicates", v.DuplicateSources).Warn("duplicate source labels in batch")
	}
	reqLog.WithField("sources", v.Summary.SourceCount).Info("reviews aggregated")
	s.writeJSON(w, reqLog, v)
}

// searchReviews filters the held batch by this request's q; no fetch happens.
func (s *Server) searchReviews(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "search")
	v := s.state.ReviewView(r.URL.Query().Get("q"))
	reqLog.WithField("matched", len(v.Sources)).Debug("reviews filtered")
	s.writeJSON(w, reqLog, v)
}

func (s *Server) exportReviews(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "export")
	v := s.state.ReviewView(r.URL.Query().Get("q"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="reviews.xlsx"`)
	if err := dataset.WriteReviewView(w, v); err != nil {
		reqLog.WithField("error", err.Error()).Error("export failed")
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	reqLog.WithField("sources", len(v.Sources)).Info("reviews exported")
}

// listings fetches when query= is given, otherwise re-projects the held batch.
func (s *Server) listings(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "listings")
	q := r.URL.Query()
	batch := s.state.Listings()
	if text := strings.TrimSpace(q.Get("query")); text != "" {
		ctx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout)
		defer cancel()
		fetched, err := s.fetcher.FetchListings(ctx, text)
		if err != nil {
			reqLog.WithField("error", err.Error()).Warn("provider fetch failed")
			http.Error(w, fetchFailedMessage, http.StatusBadGateway)
			return
		}
		s.state.ReplaceListings(fetched)
		batch = fetched
	}
	v := view.BuildListingView(batch, q.Get("q"), q.Get("sort"), strings.EqualFold(q.Get("order"), "desc"))
	reqLog.WithField("listings", len(v.Listings)).Info("listings projected")
	s.writeJSON(w, reqLog, v)
}

func (s *Server) writeJSON(w http.ResponseWriter, log *logrus.Entry, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithField("error", err.Error()).Error("failed to write response")
	}
}
