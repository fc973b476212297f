package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// encodeResponse writes the response as JSON. A response implementing
// StatusCoder overrides the operation's default status.
func encodeResponse(w http.ResponseWriter, resp any, defaultStatus int) {
	status := defaultStatus
	if sc, ok := resp.(StatusCoder); ok {
		status = sc.StatusCode()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,errchkjson,gosec // best-effort after WriteHeader
	json.NewEncoder(w).Encode(resp)
}

// writeErrorResponse writes an error as an RFC 9457 problem details
// response.
func writeErrorResponse(w http.ResponseWriter, err error) {
	status := ErrorStatus(err)

	// If the error is already a ProblemDetail, use it directly.
	var pd *ProblemDetail
	if errors.As(err, &pd) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(pd.Status)
		//nolint:errcheck,errchkjson,gosec // best-effort after WriteHeader
		json.NewEncoder(w).Encode(pd)
		return
	}

	problem := &ProblemDetail{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: err.Error(),
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	//nolint:errcheck,errchkjson,gosec // best-effort after WriteHeader
	json.NewEncoder(w).Encode(problem)
}
