package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wonderlens/models"
	"wonderlens/store"
)

// journalListLimit caps GET /api/journal/{userID}.
const journalListLimit = 50

type idResp struct {
	ID string `json:"id"`
}

func (s *Server) handleJournalCreate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var entry models.JournalEntry
	if !decodeBody(w, r, &entry) {
		return
	}
	id, err := s.store.Insert(r.Context(), models.CollectionJournalEntry, entry)
	if err != nil {
		s.logger.Error("Failed to create journal entry", zap.String("userID", entry.UserID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create journal entry")
		return
	}
	writeJSON(w, http.StatusOK, idResp{ID: id})
}

func (s *Server) handleJournalList(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	userID := chi.URLParam(r, "userID")

	docs, err := s.store.Find(r.Context(), models.CollectionJournalEntry, store.Filter{"user_id": userID}, journalListLimit)
	if err != nil {
		s.logger.Error("Failed to list journal entries", zap.String("userID", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list journal entries")
		return
	}
	if docs == nil {
		docs = []store.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

type meditationResp struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
}

func (s *Server) handleMeditationStart(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var sess models.MeditationSession
	if err := decodeJSON(r, &sess); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	sess.ApplyDefaults()
	if err := models.Validate(sess); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	started := s.now().UTC()
	sess.StartedAt = &started
	id, err := s.store.Insert(r.Context(), models.CollectionMeditationSession, sess)
	if err != nil {
		s.logger.Error("Failed to start meditation", zap.String("userID", sess.UserID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to start meditation")
		return
	}
	writeJSON(w, http.StatusOK, meditationResp{ID: id, StartedAt: started.Format(time.RFC3339Nano)})
}
