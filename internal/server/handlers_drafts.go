package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// DraftStore persists raw form input. *db.DB implements it.
type DraftStore interface {
	CreateDraft(ctx context.Context, in db.DraftInput) (*db.Draft, error)
	GetDraft(ctx context.Context, id uuid.UUID) (*db.Draft, error)
	ListDrafts(ctx context.Context, limit int) ([]db.Draft, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, in db.DraftInput) (*db.Draft, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) (bool, error)
}

func (s *Server) requireDrafts() error {
	if s.drafts == nil {
		return &ErrUnavailable{Feature: "saved drafts (no database configured)"}
	}
	return nil
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (db.DraftInput, error) {
	var req types.DraftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return db.DraftInput{}, err
	}
	variant, err := types.ParseVariant(req.Template)
	if err != nil {
		return db.DraftInput{}, err
	}
	return db.DraftInput{Title: req.Title, Template: variant, Profile: req.Profile}, nil
}

func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.requireDrafts(); err != nil {
		s.writeError(w, err)
		return
	}
	in, err := decodeDraft(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	draft, err := s.drafts.CreateDraft(r.Context(), in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, draft)
}

func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	if err := s.requireDrafts(); err != nil {
		s.writeError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}

	drafts, err := s.drafts.ListDrafts(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"drafts": drafts,
		"count":  len(drafts),
	})
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.lookupDraft(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

func (s *Server) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.requireDrafts(); err != nil {
		s.writeError(w, err)
		return
	}
	id, err := pathID(r, "draft")
	if err != nil {
		s.writeError(w, err)
		return
	}
	in, err := decodeDraft(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	draft, err := s.drafts.UpdateDraft(r.Context(), id, in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if draft == nil {
		s.writeError(w, &ErrNotFound{Resource: "draft", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.requireDrafts(); err != nil {
		s.writeError(w, err)
		return
	}
	id, err := pathID(r, "draft")
	if err != nil {
		s.writeError(w, err)
		return
	}

	deleted, err := s.drafts.DeleteDraft(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !deleted {
		s.writeError(w, &ErrNotFound{Resource: "draft", ID: id.String()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDraftPreview renders a saved draft with its stored template.
func (s *Server) handleDraftPreview(w http.ResponseWriter, r *http.Request) {
	draft, err := s.lookupDraft(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	preview, err := session.New(draft.Template, s.sessionOpts).Update(draft.Profile)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, previewResponse("", preview))
}

func (s *Server) lookupDraft(r *http.Request) (*db.Draft, error) {
	if err := s.requireDrafts(); err != nil {
		return nil, err
	}
	id, err := pathID(r, "draft")
	if err != nil {
		return nil, err
	}
	draft, err := s.drafts.GetDraft(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, &ErrNotFound{Resource: "draft", ID: id.String()}
	}
	return draft, nil
}
