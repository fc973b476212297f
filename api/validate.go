package api

// SelfValidator is implemented by request types that validate themselves
// beyond what constraint tags can express.
type SelfValidator interface {
	Validate() error
}
