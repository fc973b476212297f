package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"time"
)

// paramTags are the struct tags used for binding request parameters.
var paramTags = []string{"path", "query", "header"}

// requestCategory describes how a request type is decoded.
type requestCategory int

const (
	catVoid     requestCategory = iota // Void — no params, no body
	catBodyOnly                        // entire struct is the body
	catParams                          // param tags only
	catMixed                           // param tags plus a Body field
)

// classifyRequest determines how a request type is decoded.
func classifyRequest(t reflect.Type) requestCategory {
	if t == reflect.TypeFor[Void]() {
		return catVoid
	}
	if hasBodyField(t) {
		return catMixed
	}
	if hasParamTags(t) {
		return catParams
	}
	return catBodyOnly
}

// decodeRequest creates a new Req value and populates it from the HTTP
// request. Query and header values arrive as strings and are coerced into
// the field's declared type; absent optional values leave the zero value in
// place and are never fabricated.
func decodeRequest[Req any](r *http.Request) (*Req, error) {
	req := new(Req)
	t := reflect.TypeFor[Req]()
	cat := classifyRequest(t)

	if cat == catVoid {
		return req, nil
	}

	if err := bindParams(req, r); err != nil {
		return nil, err
	}

	switch cat {
	case catBodyOnly:
		if err := decodeBody(r, req); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBindBody, err)
		}
	case catMixed:
		bodyField := reflect.ValueOf(req).Elem().FieldByName("Body")
		if err := decodeBody(r, bodyField.Addr().Interface()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBindBody, err)
		}
	}

	return req, nil
}

// bindParams binds path, query, and header values to struct fields.
func bindParams(target any, r *http.Request) error {
	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Name == "Body" {
			continue
		}

		field := v.Field(i)

		if name := f.Tag.Get("path"); name != "" {
			val := r.PathValue(name)
			if val != "" {
				if err := setFieldValue(field, val); err != nil {
					return fmt.Errorf("%w: %s: %w", ErrBindPath, name, err)
				}
			}
		}

		if name := f.Tag.Get("query"); name != "" {
			val := r.URL.Query().Get(name)
			if val == "" {
				val = f.Tag.Get("default")
			}
			if val != "" {
				if err := setFieldValue(field, val); err != nil {
					return fmt.Errorf("%w: %s: %w", ErrBindQuery, name, err)
				}
			}
		}

		if name := f.Tag.Get("header"); name != "" {
			val := r.Header.Get(name)
			if val == "" {
				val = f.Tag.Get("default")
			}
			if val != "" {
				if err := setFieldValue(field, val); err != nil {
					return fmt.Errorf("%w: %s: %w", ErrBindHeader, name, err)
				}
			}
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value from a string, supporting the
// primitive types operations declare.
func setFieldValue(field reflect.Value, value string) error {
	if field.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}

	//exhaustive:ignore
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Float64:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type: %s", field.Type())
	}
	return nil
}

// decodeBody decodes the request body as JSON into target.
func decodeBody(r *http.Request, target any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// hasParamTags reports whether the given type has any fields with
// parameter binding tags (path, query, header).
func hasParamTags(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		for _, tag := range paramTags {
			if f.Tag.Get(tag) != "" {
				return true
			}
		}
	}
	return false
}

// hasBodyField reports whether the given type has an exported "Body" field.
func hasBodyField(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	_, ok := t.FieldByName("Body")
	return ok
}

// isParamField reports whether a struct field has parameter binding tags.
func isParamField(f reflect.StructField) bool {
	for _, tag := range paramTags {
		if f.Tag.Get(tag) != "" {
			return true
		}
	}
	return false
}
