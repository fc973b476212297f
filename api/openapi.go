package api

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OpenAPISpec is the top-level OpenAPI 3.1 document.
type OpenAPISpec struct {
	OpenAPI string              `json:"openapi"`
	Info    OpenAPIInfo         `json:"info"`
	Paths   map[string]PathItem `json:"paths"`
}

// OpenAPIInfo holds API metadata.
type OpenAPIInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// PathItem maps HTTP methods to operations.
type PathItem map[string]Operation

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string        `json:"summary,omitempty"`
	Description string        `json:"description,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Parameters  []Parameter   `json:"parameters,omitempty"`
	RequestBody *RequestBody  `json:"requestBody,omitempty"`
	Responses   OperationResp `json:"responses"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string     `json:"name"`
	In          string     `json:"in"`
	Description string     `json:"description,omitempty"`
	Required    bool       `json:"required,omitempty"`
	Schema      JSONSchema `json:"schema"`
}

// RequestBody describes the request body.
type RequestBody struct {
	Required bool                `json:"required"`
	Content  map[string]MediaObj `json:"content"`
}

// MediaObj is a media type object with an optional schema.
type MediaObj struct {
	Schema *JSONSchema `json:"schema,omitempty"`
}

// OperationResp maps HTTP status codes to response objects.
type OperationResp map[string]ResponseObj

// ResponseObj describes a single response.
type ResponseObj struct {
	Description string              `json:"description"`
	Content     map[string]MediaObj `json:"content,omitempty"`
}

// Spec generates the full OpenAPI 3.1 specification from registered routes.
func (r *Router) Spec() OpenAPISpec {
	spec := OpenAPISpec{
		OpenAPI: "3.1.0",
		Info: OpenAPIInfo{
			Title:   r.title,
			Version: r.version,
		},
		Paths: make(map[string]PathItem),
	}

	for i := range r.routes {
		ri := &r.routes[i]
		path := toOpenAPIPath(ri.pattern)
		method := strings.ToLower(ri.method)

		if spec.Paths[path] == nil {
			spec.Paths[path] = make(PathItem)
		}
		spec.Paths[path][method] = buildOperation(ri)
	}

	return spec
}

// buildOperation creates an Operation from a routeInfo.
func buildOperation(ri *routeInfo) Operation {
	op := Operation{
		Summary:     ri.summary,
		Description: ri.desc,
		Tags:        ri.tags,
		Responses:   make(OperationResp),
	}

	if ri.reqType != nil && ri.reqType != reflect.TypeFor[Void]() {
		op.Parameters = extractParameters(ri.reqType)
		op.RequestBody = extractRequestBody(ri.reqType, ri.method)
	}

	status := ri.status
	if status == 0 {
		status = http.StatusOK
	}

	if ri.respType == nil || ri.respType == reflect.TypeFor[Void]() {
		op.Responses[strconv.Itoa(status)] = ResponseObj{
			Description: "No content",
		}
		return op
	}

	respSchema := typeToSchema(ri.respType)
	op.Responses[strconv.Itoa(status)] = ResponseObj{
		Description: "Successful response",
		Content: map[string]MediaObj{
			"application/json": {Schema: &respSchema},
		},
	}

	return op
}

// extractParameters builds OpenAPI parameters from param-tagged fields.
func extractParameters(t reflect.Type) []Parameter {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var params []Parameter
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		for _, tagName := range paramTags {
			val := f.Tag.Get(tagName)
			if val == "" {
				continue
			}

			p := Parameter{
				Name:   val,
				In:     tagName,
				Schema: typeToSchema(f.Type),
			}

			if doc := f.Tag.Get("doc"); doc != "" {
				p.Description = doc
			}

			if f.Tag.Get("required") == "true" || tagName == "path" {
				p.Required = true
			}

			params = append(params, p)
		}
	}

	return params
}

// extractRequestBody builds an OpenAPI RequestBody if the request type has a body.
func extractRequestBody(t reflect.Type, method string) *RequestBody {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	// Has Body field → body is the Body field's type.
	if bodyField, ok := t.FieldByName("Body"); ok {
		schema := typeToSchema(bodyField.Type)
		return &RequestBody{
			Required: true,
			Content: map[string]MediaObj{
				"application/json": {Schema: &schema},
			},
		}
	}

	// No param tags → entire struct is body (only for POST/PUT/PATCH).
	if !hasParamTags(t) && (method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch) {
		schema := typeToSchema(t)
		return &RequestBody{
			Required: true,
			Content: map[string]MediaObj{
				"application/json": {Schema: &schema},
			},
		}
	}

	return nil
}

// toOpenAPIPath converts a Go mux pattern like "/products/{handle}" to an
// OpenAPI path. Wildcard suffixes lose the ellipsis.
func toOpenAPIPath(pattern string) string {
	return strings.ReplaceAll(pattern, "...", "")
}

// ServeSpec mounts a GET route serving the document as JSON.
func (r *Router) ServeSpec(pattern string) {
	r.Handle(http.MethodGet, pattern, specHandler(r, "application/json", encodeSpecJSON))
}

// ServeSpecYAML mounts a GET route serving the document as YAML.
func (r *Router) ServeSpecYAML(pattern string) {
	r.Handle(http.MethodGet, pattern, specHandler(r, "application/yaml", encodeSpecYAML))
}

// specHandler regenerates the document per request, so routes mounted
// after the spec route still appear in it.
func specHandler(r *Router, contentType string, encode func(io.Writer, OpenAPISpec) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		// Best effort after headers are sent.
		_ = encode(w, r.Spec())
	})
}

func encodeSpecJSON(w io.Writer, spec OpenAPISpec) error {
	return json.NewEncoder(w).Encode(spec)
}

func encodeSpecYAML(w io.Writer, spec OpenAPISpec) error {
	return yaml.NewEncoder(w).Encode(spec)
}

// WriteSpec writes the document as indented JSON, for CLI spec dumps.
func (r *Router) WriteSpec(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Spec())
}

// WriteSpecYAML writes the document as YAML.
func (r *Router) WriteSpecYAML(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(r.Spec())
}
