package classify

import "errors"

var (
	// ErrModelUnavailable means the stage's model was never loaded or its
	// endpoint is not configured.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrInference means the model was reachable but the call failed.
	ErrInference = errors.New("inference failed")

	// ErrLabelOutOfDomain means the intent model produced a label that is not
	// tagged with the active domain. The stage fails closed on it.
	ErrLabelOutOfDomain = errors.New("predicted label outside active domain")
)
