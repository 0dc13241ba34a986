package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

const draftColumns = `id, title, template, profile, created_at, updated_at`

// CreateDraft stores a new draft and returns it with its generated ID
func (db *DB) CreateDraft(ctx context.Context, in DraftInput) (*Draft, error) {
	profile, err := encodeProfile(in.Profile)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO resume_drafts (title, template, profile)
		 VALUES ($1, $2, $3)
		 RETURNING `+draftColumns,
		in.Title, string(normalizeVariant(in.Template)), profile,
	)
	d, err := scanDraft(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return d, nil
}

// GetDraft retrieves a draft by ID. Returns nil, nil when it does not exist.
func (db *DB) GetDraft(ctx context.Context, id uuid.UUID) (*Draft, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+draftColumns+` FROM resume_drafts WHERE id = $1`,
		id,
	)
	d, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return d, nil
}

// ListDrafts returns the most recently updated drafts first
func (db *DB) ListDrafts(ctx context.Context, limit int) ([]Draft, error) {
	if limit <= 0 {
		limit = DefaultDraftListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+draftColumns+` FROM resume_drafts
		 ORDER BY updated_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	drafts := []Draft{}
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		drafts = append(drafts, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return drafts, nil
}

// UpdateDraft replaces the writable fields of a draft. Returns nil, nil when it does not exist.
func (db *DB) UpdateDraft(ctx context.Context, id uuid.UUID, in DraftInput) (*Draft, error) {
	profile, err := encodeProfile(in.Profile)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE resume_drafts
		 SET title = $2, template = $3, profile = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+draftColumns,
		id, in.Title, string(normalizeVariant(in.Template)), profile,
	)
	d, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	return d, nil
}

// DeleteDraft removes a draft. Reports whether a row was deleted.
func (db *DB) DeleteDraft(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resume_drafts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete draft: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanDraft(row pgx.Row) (*Draft, error) {
	var (
		d        Draft
		template string
		profile  []byte
	)
	if err := row.Scan(&d.ID, &d.Title, &template, &profile, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.Template = normalizeVariant(types.Variant(template))
	p, err := decodeProfile(profile)
	if err != nil {
		return nil, err
	}
	d.Profile = p
	return &d, nil
}

func encodeProfile(p types.ProfileInput) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	return b, nil
}

func decodeProfile(b []byte) (types.ProfileInput, error) {
	var p types.ProfileInput
	if len(b) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return p, nil
}

// normalizeVariant maps stored or requested values onto a known template.
func normalizeVariant(v types.Variant) types.Variant {
	if v.Valid() {
		return v
	}
	return types.DefaultVariant
}
