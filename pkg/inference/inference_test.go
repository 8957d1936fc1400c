package inference

import "testing"

func TestArgMax(t *testing.T) {
	tests := []struct {
		name      string
		scores    []LabelScore
		wantLabel string
		wantOk    bool
	}{
		{
			name:   "empty distribution",
			scores: nil,
			wantOk: false,
		},
		{
			name:      "single entry",
			scores:    []LabelScore{{Label: "a", Score: 0.4}},
			wantLabel: "a",
			wantOk:    true,
		},
		{
			name: "picks highest",
			scores: []LabelScore{
				{Label: "a", Score: 0.1},
				{Label: "b", Score: 0.7},
				{Label: "c", Score: 0.2},
			},
			wantLabel: "b",
			wantOk:    true,
		},
		{
			name: "tie keeps first",
			scores: []LabelScore{
				{Label: "a", Score: 0.5},
				{Label: "b", Score: 0.5},
			},
			wantLabel: "a",
			wantOk:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ArgMax(tt.scores)
			if ok != tt.wantOk {
				t.Fatalf("ArgMax() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got.Label != tt.wantLabel {
				t.Errorf("ArgMax() label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestState(t *testing.T) {
	unavailable := Unavailable()
	if unavailable.IsLoaded() {
		t.Error("Unavailable state reports loaded")
	}
	if _, ok := unavailable.Get(); ok {
		t.Error("Unavailable state returned a classifier")
	}

	loaded := Loaded(NewHTTPClient("http://localhost", "model", ""))
	if !loaded.IsLoaded() {
		t.Error("Loaded state reports unavailable")
	}
	if c, ok := loaded.Get(); !ok || c == nil {
		t.Error("Loaded state did not return its classifier")
	}
}
