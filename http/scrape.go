package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/awalczak/govnotice"
)

// scrapeRequest is the optional body of POST /api/scrape. An omitted or
// empty URL scrapes the default placeholder site.
type scrapeRequest struct {
	URL string `json:"url"`
}

// handleScrape serves POST /api/scrape. A page yielding zero candidates is
// an empty success, not an error.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.error(w, r, govnotice.Errorf(govnotice.EINVALID, "Invalid request body."))
		return
	}

	result, err := s.Scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		s.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
