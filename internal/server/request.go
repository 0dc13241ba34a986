package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
)

// maxBodyBytes bounds request bodies; a résumé form is a few kilobytes.
const maxBodyBytes = 1 << 20

type validatable interface {
	Validate() error
}

// decodeJSON reads the body into dst and runs its validator tags.
// An empty body decodes as the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst validatable) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrValidation{Message: "request body too large"}
		}
		return &ErrValidation{Message: "invalid JSON: " + err.Error()}
	}
	if err := dst.Validate(); err != nil {
		return fromValidator(err)
	}
	return nil
}

// pathID parses the {id} path value as a UUID.
func pathID(r *http.Request, resource string) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ErrNotFound{Resource: resource, ID: raw}
	}
	return id, nil
}

func logError(msg string, err error) {
	log.Printf("[server] %s: %v", msg, err)
}
