package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Draft is a saved set of raw form input. Markup is never stored; it is
// rendered again from Profile on every read.
type Draft struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Template  types.Variant      `json:"template"`
	Profile   types.ProfileInput `json:"profile"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// DraftInput holds the writable fields of a draft
type DraftInput struct {
	Title    string
	Template types.Variant
	Profile  types.ProfileInput
}

// DefaultDraftListLimit caps ListDrafts when no limit is given
const DefaultDraftListLimit = 50
