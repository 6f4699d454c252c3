package api

import (
	"net/http"

	"metals-tracker/internal/domain"
	"metals-tracker/internal/query"
)

type homeResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, homeResponse{
		Name:    apiName,
		Version: apiVersion,
		Status:  "ok",
	})
}

type healthResponse struct {
	Status         string `json:"status"`
	Database       string `json:"database"`
	DatabaseType   string `json:"database_type"`
	CurrentRecords int    `json:"current_records"`
	Timestamp      string `json:"timestamp"`
}

type healthErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	InitError string `json:"init_error"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.current.CountAll(r.Context())
	if err != nil || s.initErr != "" {
		msg := s.initErr
		if err != nil {
			msg = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, healthErrorResponse{
			Status:    "error",
			Message:   msg,
			InitError: s.initErr,
			Timestamp: timestamp(),
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:         "healthy",
		Database:       "connected",
		DatabaseType:   "in-memory",
		CurrentRecords: count,
		Timestamp:      timestamp(),
	})
}

type weeklyDataResponse struct {
	Metal      string              `json:"metal"`
	Cycle      string              `json:"cycle"`
	Data       []query.WeeklyPoint `json:"data"`
	TotalWeeks int                 `json:"total_weeks"`
}

func (s *Server) handleWeeklyData(w http.ResponseWriter, r *http.Request) {
	metal, err := metalParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cycle, err := cycleParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := s.queries.WeeklySeries(r.Context(), metal, cycle)
	if err != nil {
		s.logger.Printf("weekly data query failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, weeklyDataResponse{
		Metal:      metal.String(),
		Cycle:      cycle,
		Data:       points,
		TotalWeeks: len(points),
	})
}

type rawDataResponse struct {
	Metal        string             `json:"metal"`
	Cycle        string             `json:"cycle"`
	Data         []*domain.PriceRow `json:"data"`
	TotalRecords int                `json:"total_records"`
	Limit        int                `json:"limit"`
	Offset       int                `json:"offset"`
	HasMore      bool               `json:"has_more"`
}

func (s *Server) handleRawData(w http.ResponseWriter, r *http.Request) {
	metal, err := metalParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cycle, err := cycleParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, offset, err := paginationParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.queries.RawSeries(r.Context(), metal, cycle, limit, offset)
	if err != nil {
		s.logger.Printf("raw data query failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rawDataResponse{
		Metal:        metal.String(),
		Cycle:        cycle,
		Data:         page.Rows,
		TotalRecords: page.Total,
		Limit:        page.Limit,
		Offset:       page.Offset,
		HasMore:      page.HasMore,
	})
}

type marketSummaryResponse struct {
	Summary   map[string]*query.MetalSummary `json:"summary"`
	Timestamp string                         `json:"timestamp"`
}

func (s *Server) handleMarketSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.queries.MarketSummary(r.Context())
	if err != nil {
		s.logger.Printf("market summary query failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, marketSummaryResponse{
		Summary:   summary,
		Timestamp: timestamp(),
	})
}

type databaseStatsResponse struct {
	Stats     *query.Stats `json:"stats"`
	Timestamp string       `json:"timestamp"`
}

func (s *Server) handleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.queries.DatabaseStats(r.Context())
	if err != nil {
		s.logger.Printf("database stats query failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, databaseStatsResponse{
		Stats:     stats,
		Timestamp: timestamp(),
	})
}
