package classify

import "testing"

func TestIntentsForDomain(t *testing.T) {
	tests := []struct {
		domain    Domain
		wantCount int
	}{
		{DomainPregnancy, 6},
		{DomainGeneral, 11},
		{DomainNone, 0},
		{Domain("lainnya"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.domain), func(t *testing.T) {
			got := IntentsForDomain(tt.domain)
			if len(got) != tt.wantCount {
				t.Errorf("IntentsForDomain(%s) returned %d intents, want %d", tt.domain, len(got), tt.wantCount)
			}
			for _, it := range got {
				if DomainOf(it) != tt.domain {
					t.Errorf("intent %s tagged %s, want %s", it, DomainOf(it), tt.domain)
				}
			}
		})
	}
}

func TestAllIntentsCoverBothDomains(t *testing.T) {
	all := AllIntents()
	if len(all) != 17 {
		t.Fatalf("AllIntents() returned %d intents, want 17", len(all))
	}
	seen := make(map[Intent]bool, len(all))
	for _, it := range all {
		if seen[it] {
			t.Errorf("intent %s appears twice", it)
		}
		seen[it] = true
		if Describe(it) == "" {
			t.Errorf("intent %s has no description", it)
		}
	}
}

func TestDomainOf(t *testing.T) {
	tests := []struct {
		intent Intent
		want   Domain
	}{
		{IntentANCTracker, DomainPregnancy},
		{IntentSupplementHistory, DomainPregnancy},
		{IntentBloodType, DomainGeneral},
		{IntentDoctorSchedule, DomainGeneral},
		{IntentNone, DomainNone},
		{Intent("tidak_dikenal"), DomainNone},
	}

	for _, tt := range tests {
		if got := DomainOf(tt.intent); got != tt.want {
			t.Errorf("DomainOf(%s) = %s, want %s", tt.intent, got, tt.want)
		}
	}
}

func TestParseIntent(t *testing.T) {
	if it, ok := ParseIntent("reminder_kontrol_kehamilan"); !ok || it != IntentANCReminder {
		t.Errorf("ParseIntent(reminder_kontrol_kehamilan) = %s, %v", it, ok)
	}
	if _, ok := ParseIntent("NONE"); ok {
		t.Error("ParseIntent(NONE) should not be a known intent")
	}
	if _, ok := ParseIntent("label_asing"); ok {
		t.Error("ParseIntent(label_asing) should not be a known intent")
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		label    string
		want     Domain
		wantKnow bool
	}{
		{"KEHAMILAN", DomainPregnancy, true},
		{"UMUM", DomainGeneral, true},
		{"NONE", DomainNone, false},
		{"kehamilan", DomainNone, false},
	}

	for _, tt := range tests {
		got, known := ParseDomain(tt.label)
		if got != tt.want || known != tt.wantKnow {
			t.Errorf("ParseDomain(%q) = %s, %v, want %s, %v", tt.label, got, known, tt.want, tt.wantKnow)
		}
	}
}
