package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	variant, err := types.ParseVariant(req.Template)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess := s.sessions.Create(variant)
	s.jsonResponse(w, http.StatusCreated, sessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookupSession(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "session")
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !s.sessions.Delete(id) {
		s.writeError(w, &ErrNotFound{Resource: "session", ID: id.String()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSelectTemplate switches the session template and returns the new preview.
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookupSession(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req types.SelectTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	variant, err := types.ParseVariant(req.Template)
	if err != nil {
		s.writeError(w, err)
		return
	}

	preview, err := sess.SelectTemplate(variant, req.Profile)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, previewResponse(sess.ID.String(), preview))
}

func (s *Server) handleSessionUpdate(w http.ResponseWriter, r *http.Request) {
	sess, in, err := s.sessionAction(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	preview, err := sess.Update(in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, previewResponse(sess.ID.String(), preview))
}

func (s *Server) handleSessionPrint(w http.ResponseWriter, r *http.Request) {
	sess, in, err := s.sessionAction(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writePrint(w, sess, in)
}

func (s *Server) handleSessionExportPDF(w http.ResponseWriter, r *http.Request) {
	sess, in, err := s.sessionAction(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writePDF(w, r, sess, in)
}

func (s *Server) lookupSession(r *http.Request) (*session.Session, error) {
	id, err := pathID(r, "session")
	if err != nil {
		return nil, err
	}
	sess := s.sessions.Get(id)
	if sess == nil {
		return nil, &ErrNotFound{Resource: "session", ID: id.String()}
	}
	return sess, nil
}

func (s *Server) sessionAction(w http.ResponseWriter, r *http.Request) (*session.Session, types.ProfileInput, error) {
	sess, err := s.lookupSession(r)
	if err != nil {
		return nil, types.ProfileInput{}, err
	}
	var req types.SessionActionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return nil, types.ProfileInput{}, err
	}
	return sess, req.Profile, nil
}

func sessionResponse(sess *session.Session) types.SessionResponse {
	return types.SessionResponse{
		SessionID: sess.ID,
		Template:  sess.Variant(),
		CreatedAt: sess.CreatedAt,
	}
}
