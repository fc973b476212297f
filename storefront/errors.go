package storefront

import "errors"

// ErrNotFound reports that a find-by-handle lookup matched nothing. It is
// a delegate failure like any other; callers do not map it to a distinct
// status.
var ErrNotFound = errors.New("storefront: not found")
