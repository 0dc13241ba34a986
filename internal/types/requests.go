package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// RenderRequest is the body accepted by the stateless render, print and
// export endpoints.
type RenderRequest struct {
	Template string       `json:"template,omitempty" validate:"omitempty,oneof=modern classic executive"`
	Profile  ProfileInput `json:"profile"`
}

// Validate validates the RenderRequest using the validator.
func (r *RenderRequest) Validate() error {
	return validate.Struct(r)
}

// CreateSessionRequest opens a new editing session.
type CreateSessionRequest struct {
	Template string `json:"template,omitempty" validate:"omitempty,oneof=modern classic executive"`
}

// Validate validates the CreateSessionRequest using the validator.
func (r *CreateSessionRequest) Validate() error {
	return validate.Struct(r)
}

// SelectTemplateRequest switches the session template and re-renders.
type SelectTemplateRequest struct {
	Template string       `json:"template" validate:"required,oneof=modern classic executive"`
	Profile  ProfileInput `json:"profile"`
}

// Validate validates the SelectTemplateRequest using the validator.
func (r *SelectTemplateRequest) Validate() error {
	return validate.Struct(r)
}

// SessionActionRequest carries the current form for update, print and export.
type SessionActionRequest struct {
	Profile ProfileInput `json:"profile"`
}

// Validate validates the SessionActionRequest using the validator.
func (r *SessionActionRequest) Validate() error {
	return validate.Struct(r)
}

// DraftRequest creates or replaces a saved draft.
type DraftRequest struct {
	Title    string       `json:"title" validate:"max=200"`
	Template string       `json:"template,omitempty" validate:"omitempty,oneof=modern classic executive"`
	Profile  ProfileInput `json:"profile"`
}

// Validate validates the DraftRequest using the validator.
func (r *DraftRequest) Validate() error {
	return validate.Struct(r)
}

// SummaryMeter mirrors the summary character counter of the form.
type SummaryMeter struct {
	Count     int     `json:"count"`
	Limit     int     `json:"limit"`
	Progress  float64 `json:"progress"`
	OverLimit bool    `json:"over_limit"`
}

// PreviewResponse is returned by render and session actions.
type PreviewResponse struct {
	SessionID string       `json:"session_id,omitempty"`
	Template  Variant      `json:"template"`
	HTML      string       `json:"html"`
	Summary   SummaryMeter `json:"summary"`
}

// SessionResponse describes a session.
type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Template  Variant   `json:"template"`
	CreatedAt time.Time `json:"created_at"`
}

// TemplateInfo describes one available template.
type TemplateInfo struct {
	ID    Variant `json:"id"`
	Label string  `json:"label"`
}
