package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// handleTemplates lists the available templates
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	variants := s.renderer.Variants()
	out := make([]types.TemplateInfo, 0, len(variants))
	for _, v := range variants {
		out = append(out, types.TemplateInfo{ID: v, Label: v.Label()})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// oneShot decodes a RenderRequest and returns a throwaway session on its template.
func (s *Server) oneShot(w http.ResponseWriter, r *http.Request) (*session.Session, types.ProfileInput, error) {
	var req types.RenderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return nil, types.ProfileInput{}, err
	}
	variant, err := types.ParseVariant(req.Template)
	if err != nil {
		return nil, types.ProfileInput{}, err
	}
	return session.New(variant, s.sessionOpts), req.Profile, nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sess, in, err := s.oneShot(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	preview, err := sess.Update(in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, previewResponse("", preview))
}

func (s *Server) handleRenderHTML(w http.ResponseWriter, r *http.Request) {
	sess, in, err := s.oneShot(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	preview, err := sess.Update(in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.bodyResponse(w, "text/html; charset=utf-8", []byte(preview.HTML))
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	sess, in, err := s.oneShot(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writePrint(w, sess, in)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	sess, in, err := s.oneShot(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writePDF(w, r, sess, in)
}

func (s *Server) handleExportText(w http.ResponseWriter, r *http.Request) {
	sess, in, err := s.oneShot(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	preview, err := sess.Update(in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	text, err := export.PlainText(preview.HTML)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.bodyResponse(w, "text/plain; charset=utf-8", []byte(text))
}

func (s *Server) writePrint(w http.ResponseWriter, sess *session.Session, in types.ProfileInput) {
	doc, err := sess.Print(in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.bodyResponse(w, "text/html; charset=utf-8", []byte(doc))
}

func (s *Server) writePDF(w http.ResponseWriter, r *http.Request, sess *session.Session, in types.ProfileInput) {
	if s.exporter == nil {
		s.writeError(w, &ErrUnavailable{Feature: "PDF export"})
		return
	}
	pdf, err := sess.ExportPDF(r.Context(), in, s.exporter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	s.bodyResponse(w, "application/pdf", pdf)
}

func previewResponse(sessionID string, p *session.Preview) types.PreviewResponse {
	return types.PreviewResponse{
		SessionID: sessionID,
		Template:  p.Variant,
		HTML:      p.HTML,
		Summary:   p.Summary,
	}
}
