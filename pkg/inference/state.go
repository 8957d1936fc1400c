package inference

// State is the lifecycle of one classifier slot: either a client was
// constructed at boot (Loaded) or the model is not configured / failed to
// initialize (Unavailable). Pipeline stages branch on this explicitly instead
// of checking for nil clients.
type State struct {
	classifier Classifier
}

func Loaded(c Classifier) State {
	return State{classifier: c}
}

func Unavailable() State {
	return State{}
}

// Get returns the classifier and whether one is loaded.
func (s State) Get() (Classifier, bool) {
	if s.classifier == nil {
		return nil, false
	}
	return s.classifier, true
}

func (s State) IsLoaded() bool {
	return s.classifier != nil
}
