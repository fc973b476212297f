package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderItem struct {
	VariantID string `json:"variantId" required:"true"`
	Quantity  string `json:"quantity" required:"true"`
}

type orderBody struct {
	Email string      `json:"email" required:"true" format:"email"`
	Items []orderItem `json:"items" required:"true" minItems:"1"`
	Note  string      `json:"note" maxLength:"10"`
}

type orderReq struct {
	Domain string `header:"x-shop-domain"`
	Body   orderBody
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	var pd *ProblemDetail
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, http.StatusBadRequest, pd.Status)

	fields := make([]string, 0, len(pd.Errors))
	for _, ve := range pd.Errors {
		fields = append(fields, ve.Field)
	}
	return fields
}

func TestValidateConstraints(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		req        any
		wantFields []string
	}{
		"valid order passes": {
			req: &orderReq{
				Body: orderBody{
					Email: "a@b.com",
					Items: []orderItem{{VariantID: "v1", Quantity: "2"}},
				},
			},
			wantFields: nil,
		},
		"missing email and empty items reported together": {
			req: &orderReq{
				Body: orderBody{},
			},
			wantFields: []string{"body.email", "body.items"},
		},
		"malformed email": {
			req: &orderReq{
				Body: orderBody{
					Email: "not-an-email",
					Items: []orderItem{{VariantID: "v1", Quantity: "2"}},
				},
			},
			wantFields: []string{"body.email"},
		},
		"item fields addressed by index": {
			req: &orderReq{
				Body: orderBody{
					Email: "a@b.com",
					Items: []orderItem{
						{VariantID: "v1", Quantity: "2"},
						{},
					},
				},
			},
			wantFields: []string{"body.items.1.variantId", "body.items.1.quantity"},
		},
		"maxLength": {
			req: &orderReq{
				Body: orderBody{
					Email: "a@b.com",
					Items: []orderItem{{VariantID: "v1", Quantity: "2"}},
					Note:  "this note is far too long",
				},
			},
			wantFields: []string{"body.note"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := validateConstraints(tc.req)
			if tc.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tc.wantFields, fieldsOf(t, err))
		})
	}
}

func TestValidateConstraints_numeric_and_enum(t *testing.T) {
	t.Parallel()

	type req struct {
		Page  int    `query:"page" minimum:"1" maximum:"100"`
		Sort  string `query:"sort" enum:"asc,desc"`
		Title string `query:"title" minLength:"3" pattern:"^[a-z-]+$"`
	}

	tests := map[string]struct {
		req        req
		wantFields []string
	}{
		"in range": {
			req:        req{Page: 5, Sort: "asc", Title: "abc"},
			wantFields: nil,
		},
		"below minimum": {
			req:        req{Page: -1, Sort: "desc", Title: "abc"},
			wantFields: []string{"page"},
		},
		"above maximum": {
			req:        req{Page: 500, Sort: "desc", Title: "abc"},
			wantFields: []string{"page"},
		},
		"enum violation": {
			req:        req{Page: 1, Sort: "sideways", Title: "abc"},
			wantFields: []string{"sort"},
		},
		"pattern and length": {
			req:        req{Page: 1, Sort: "asc", Title: "A!"},
			wantFields: []string{"title", "title"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := validateConstraints(&tc.req)
			if tc.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tc.wantFields, fieldsOf(t, err))
		})
	}
}

func TestValidateConstraints_param_fields_report_tag_names(t *testing.T) {
	t.Parallel()

	// Diagnostics name what the client sent, not the Go field.
	type req struct {
		Handle string `query:"handle" required:"true"`
		Token  string `header:"x-api-token" minLength:"8"`
		ID     string `path:"id" pattern:"^[0-9]+$"`
	}

	err := validateConstraints(&req{Token: "short", ID: "abc"})
	assert.ElementsMatch(t, []string{"handle", "x-api-token", "id"}, fieldsOf(t, err))
}

func TestErrorStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusConflict, ErrorStatus(Error(http.StatusConflict, "nope")))
	assert.Equal(t, http.StatusBadRequest, ErrorStatus(&ProblemDetail{Status: http.StatusBadRequest}))
	assert.Equal(t, http.StatusInternalServerError, ErrorStatus(errors.New("plain")))
}
