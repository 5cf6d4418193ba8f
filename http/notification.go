package http

import (
	"net/http"
	"strconv"

	"github.com/awalczak/govnotice"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// notificationListResponse pairs a page of notifications with pagination
// bookkeeping.
type notificationListResponse struct {
	Notifications []*govnotice.Notification `json:"notifications"`
	Pagination    pagination                `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// handleNotificationList serves GET /api/notifications with optional
// page, limit and category query parameters. Only active records are
// returned, newest publication first.
func (s *Server) handleNotificationList(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil || page < 1 {
		s.error(w, r, govnotice.Errorf(govnotice.EINVALID, "Invalid page parameter."))
		return
	}
	limit, err := queryInt(r, "limit", defaultPageLimit)
	if err != nil || limit < 1 || limit > maxPageLimit {
		s.error(w, r, govnotice.Errorf(govnotice.EINVALID, "Invalid limit parameter."))
		return
	}

	active := true
	filter := govnotice.NotificationFilter{
		IsActive: &active,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}
	if v := r.URL.Query().Get("category"); v != "" && v != "all" {
		category := govnotice.Category(v)
		if !govnotice.ValidCategory(category) {
			s.error(w, r, govnotice.Errorf(govnotice.EINVALID, "Unknown category %q.", v))
			return
		}
		filter.Category = &category
	}

	notifications, total, err := s.NotificationService.FindNotifications(r.Context(), filter)
	if err != nil {
		s.error(w, r, err)
		return
	}

	pages := (total + limit - 1) / limit
	writeJSON(w, http.StatusOK, notificationListResponse{
		Notifications: notifications,
		Pagination: pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

// handleNotificationByID serves GET /api/notifications/{id}.
func (s *Server) handleNotificationByID(w http.ResponseWriter, r *http.Request) {
	n, err := s.NotificationService.FindNotificationByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// statsResponse summarizes the active store contents.
type statsResponse struct {
	Total      int                        `json:"total"`
	Categories map[govnotice.Category]int `json:"categories"`
}

// handleStats serves GET /api/stats.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.NotificationService.CategoryCounts(r.Context())
	if err != nil {
		s.error(w, r, err)
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	writeJSON(w, http.StatusOK, statsResponse{Total: total, Categories: counts})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
