package api

import "context"

// Void is used as a type parameter when a request carries no parameters or
// body, or a response has no body (results in 204 No Content).
type Void struct{}

// Handler is the core typed handler signature. The registry owns
// serialization — handlers never see http.ResponseWriter or *http.Request.
type Handler[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)
