package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"wonderlens/models"
	"wonderlens/store"
)

type upsertUserReq struct {
	DisplayName  string  `json:"display_name" validate:"required"`
	Email        string  `json:"email" validate:"required"`
	AuthProvider *string `json:"auth_provider"`
	AuthUID      *string `json:"auth_uid"`
	Stage        *string `json:"stage"`
	Locale       *string `json:"locale"`
}

type upsertUserResp struct {
	UserID string `json:"user_id"`
	Stage  string `json:"stage"`
}

// handleUserUpsert matches users by email; a repeat upsert overwrites the profile.
func (s *Server) handleUserUpsert(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req upsertUserReq
	if !decodeBody(w, r, &req) {
		return
	}

	user := models.User{
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		AuthProvider: orDefault(req.AuthProvider, "anonymous"),
		AuthUID:      req.AuthUID,
		Stage:        orDefault(req.Stage, models.StageAwakening),
		Locale:       orDefault(req.Locale, "en"),
		PremiumTier:  "free",
	}
	if err := models.Validate(user); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx := r.Context()
	existing, err := s.store.FindOne(ctx, models.CollectionUser, store.Filter{"email": user.Email})
	switch {
	case err == nil:
		fields, ferr := store.FieldsOf(user)
		if ferr == nil {
			ferr = s.store.Update(ctx, models.CollectionUser, existing.ID(), fields)
		}
		if ferr != nil {
			s.logger.Error("Failed to update user", zap.String("userID", existing.ID()), zap.Error(ferr))
			writeError(w, http.StatusInternalServerError, "Failed to update user")
			return
		}
		writeJSON(w, http.StatusOK, upsertUserResp{UserID: existing.ID(), Stage: user.Stage})
	case errors.Is(err, store.ErrNotFound):
		id, err := s.store.Insert(ctx, models.CollectionUser, user)
		if err != nil {
			s.logger.Error("Failed to create user", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
		writeJSON(w, http.StatusOK, upsertUserResp{UserID: id, Stage: user.Stage})
	default:
		s.logger.Error("Failed to look up user", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to look up user")
	}
}

type stageUpdateReq struct {
	UserID string `json:"user_id" validate:"required"`
	Stage  string `json:"stage" validate:"required,oneof=Awakening Healing Embodiment Manifestation Communion"`
}

func (s *Server) handleStageUpdate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req stageUpdateReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user or stage: "+err.Error())
		return
	}
	if err := models.Validate(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user or stage: "+err.Error())
		return
	}

	err := s.store.Update(r.Context(), models.CollectionUser, req.UserID, map[string]any{"stage": req.Stage})
	if errors.Is(err, store.ErrInvalidID) || errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusBadRequest, "Invalid user or stage: "+err.Error())
		return
	}
	if err != nil {
		s.logger.Error("Failed to update stage", zap.String("userID", req.UserID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update stage")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
