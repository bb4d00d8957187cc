package server

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"wonderlens/generator"
	"wonderlens/models"
)

type mantraReq struct {
	UserID             string  `json:"user_id" validate:"required"`
	UserMood           *string `json:"user_mood"`
	UserStage          *string `json:"user_stage"`
	RecentJournalTheme *string `json:"recent_journal_theme"`
}

type mantraResp struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Text    string `json:"text"`
	Meaning string `json:"meaning"`
}

// handleMantraGenerate always answers 200 with usable content unless the
// archive write fails.
func (s *Server) handleMantraGenerate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req mantraReq
	if !decodeBody(w, r, &req) {
		return
	}

	res := s.gen.Mantra(r.Context(), generator.MantraRequest{
		UserID: req.UserID,
		Mood:   deref(req.UserMood),
		Stage:  deref(req.UserStage),
		Theme:  deref(req.RecentJournalTheme),
	})

	doc := models.Mantra{
		UserID:       req.UserID,
		Text:         res.Text,
		Meaning:      res.Meaning,
		Stage:        req.UserStage,
		Mood:         req.UserMood,
		JournalTheme: req.RecentJournalTheme,
		Date:         res.Date,
	}
	id, err := s.store.Insert(r.Context(), models.CollectionMantra, doc)
	if err != nil {
		s.logger.Error("Failed to archive mantra", zap.String("userID", req.UserID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save mantra")
		return
	}
	writeJSON(w, http.StatusOK, mantraResp{ID: id, Date: res.Date, Text: res.Text, Meaning: res.Meaning})
}

type oracleReq struct {
	UserID *string `json:"user_id"`
	Prompt string  `json:"prompt"`
}

type oracleResp struct {
	ID             string   `json:"id"`
	Interpretation string   `json:"interpretation"`
	References     []string `json:"references"`
}

func (s *Server) handleOracle(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req oracleReq
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	res := s.gen.Oracle(r.Context(), generator.OracleRequest{
		UserID: deref(req.UserID),
		Prompt: req.Prompt,
	})

	doc := models.OracleConsult{
		UserID:         req.UserID,
		Prompt:         req.Prompt,
		Interpretation: res.Interpretation,
		References:     res.References,
	}
	id, err := s.store.Insert(r.Context(), models.CollectionOracleConsult, doc)
	if err != nil {
		s.logger.Error("Failed to archive oracle consult", zap.String("userID", deref(req.UserID)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save oracle consult")
		return
	}
	writeJSON(w, http.StatusOK, oracleResp{ID: id, Interpretation: res.Interpretation, References: res.References})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
