//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request RenderRequest
		wantErr bool
	}{
		{name: "no template", request: RenderRequest{}},
		{name: "known template", request: RenderRequest{Template: "classic"}},
		{name: "unknown template", request: RenderRequest{Template: "fancy"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "oneof")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSelectTemplateRequest_RequiresTemplate(t *testing.T) {
	req := SelectTemplateRequest{}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	req.Template = "executive"
	assert.NoError(t, req.Validate())
}

func TestDraftRequest_TitleLength(t *testing.T) {
	req := DraftRequest{Title: strings.Repeat("a", 201)}
	assert.Error(t, req.Validate())

	req.Title = "My résumé"
	assert.NoError(t, req.Validate())
}

func TestRenderRequest_JSONKeys(t *testing.T) {
	body := `{"template":"modern","profile":{"name":"Ada","experience":"A - B"}}`

	var req RenderRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "modern", req.Template)
	assert.Equal(t, "Ada", req.Profile.Name)
	assert.Equal(t, "A - B", req.Profile.Experience)
}
