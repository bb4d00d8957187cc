package server

import (
	"context"
	"net/http"
	"time"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"name": APIName, "status": "ok"})
}

type diagnosticsResp struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// handleDiagnostics reports store health. It always answers 200.
func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	resp := diagnosticsResp{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if s.store == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.Database = "✅ Available"
	if s.dbURLSet {
		resp.DatabaseURL = "✅ Set"
	}
	resp.DatabaseName = s.store.Name()
	resp.ConnectionStatus = "Connected"

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	names, err := s.store.Collections(ctx)
	if err != nil {
		resp.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		writeJSON(w, http.StatusOK, resp)
		return
	}
	if len(names) > 10 {
		names = names[:10]
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = "✅ Connected & Working"
	writeJSON(w, http.StatusOK, resp)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
