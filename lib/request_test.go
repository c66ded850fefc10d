package lib

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

func TestExtractAndValidateBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantFields []string
	}{
		{
			name: "valid body",
			body: `{"name": "Cafe", "quantity": 2}`,
		},
		{
			name:       "missing required field",
			body:       `{"quantity": 1}`,
			wantErr:    true,
			wantFields: []string{"name"},
		},
		{
			name:       "non-positive quantity",
			body:       `{"name": "Cafe", "quantity": 0}`,
			wantErr:    true,
			wantFields: []string{"quantity"},
		},
		{
			name:    "invalid JSON",
			body:    `{"name": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			body, err := ExtractAndValidateBody[sampleRequest](r)

			if !tt.wantErr {
				assert.NoError(t, err)
				assert.NotNil(t, body)
				return
			}

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)

			for _, field := range tt.wantFields {
				found := false
				for _, fe := range validationErr.Errors {
					if fe.Field == field {
						found = true
					}
				}
				assert.True(t, found, "expected a validation error for field %q", field)
			}
		})
	}
}
