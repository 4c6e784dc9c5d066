package query

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestBuild_CombinesPersonaAndJob(t *testing.T) {
	pc := PersonaConfig{Persona: "HR professional", Job: "Create and manage fillable forms"}
	q := Build(pc, nil)

	if q.Combined != "HR professional. Create and manage fillable forms" {
		t.Errorf("unexpected combined query: %q", q.Combined)
	}
	if q.Persona != pc.Persona || q.Job != pc.Job {
		t.Errorf("expected persona and job carried through, got %+v", q)
	}
	if len(q.Keywords) == 0 {
		t.Error("expected mined keywords")
	}
}

func TestMine_DomainExpansion(t *testing.T) {
	kws := Mine("HR professional", "prepare onboarding forms for new hires", nil)

	set := make(map[string]bool, len(kws))
	for _, kw := range kws {
		set[kw] = true
	}
	for _, want := range []string{"fillable", "signature", "interactive", "onboarding"} {
		if !set[want] {
			t.Errorf("expected keyword %q in %v", want, kws)
		}
	}
}

func TestMine_FirstMatchingDomainWins(t *testing.T) {
	// "professional" triggers the forms domain even when travel terms
	// appear later in the job text.
	kws := Mine("HR professional", "plan team travel", nil)

	set := make(map[string]bool, len(kws))
	for _, kw := range kws {
		set[kw] = true
	}
	if !set["fillable"] {
		t.Errorf("expected forms expansion, got %v", kws)
	}
	if set["hotel"] {
		t.Errorf("expected travel expansion suppressed, got %v", kws)
	}
}

func TestMine_FilenameWords(t *testing.T) {
	kws := Mine("Researcher", "study regional documents", []string{"south-of-france_cuisine.pdf"})

	set := make(map[string]bool, len(kws))
	for _, kw := range kws {
		set[kw] = true
	}
	for _, want := range []string{"south", "france", "cuisine", "pdf"} {
		if !set[want] {
			t.Errorf("expected filename keyword %q in %v", want, kws)
		}
	}
}

func TestMine_RemovesStopwordsAndShortWords(t *testing.T) {
	kws := Mine("Researcher", "see how the results are for it", nil)

	for _, kw := range kws {
		if stopWords[kw] {
			t.Errorf("stop word %q leaked into keywords", kw)
		}
		if len(kw) < 3 {
			t.Errorf("short word %q leaked into keywords", kw)
		}
	}
}

func TestMine_SortedOutput(t *testing.T) {
	kws := Mine("Travel Planner", "plan a trip of four days", []string{"cities.pdf", "cuisine.pdf"})
	if !sort.StringsAreSorted(kws) {
		t.Errorf("expected sorted keywords, got %v", kws)
	}
}

func TestLoadPersona_MissingFile(t *testing.T) {
	pc, err := LoadPersona(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if pc.Persona != DefaultPersona || pc.Job != DefaultJob {
		t.Errorf("expected default fallback, got %+v", pc)
	}
}

func TestLoadPersona_GarbledJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	pc, err := LoadPersona(path)
	if err == nil {
		t.Fatal("expected error for garbled file")
	}
	if pc.Persona != DefaultPersona || pc.Job != DefaultJob {
		t.Errorf("expected default fallback, got %+v", pc)
	}
}

func TestLoadPersona_StringFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.json")
	data := `{"persona": "Travel Planner", "job_to_be_done": "Plan a trip of four days", "documents": ["cities.pdf", "cuisine.pdf"]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	pc, err := LoadPersona(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.Persona != "Travel Planner" {
		t.Errorf("expected persona, got %q", pc.Persona)
	}
	if pc.Job != "Plan a trip of four days" {
		t.Errorf("expected job, got %q", pc.Job)
	}
	if len(pc.Documents) != 2 || pc.Documents[0] != "cities.pdf" {
		t.Errorf("expected document list, got %v", pc.Documents)
	}
}

func TestLoadPersona_ObjectFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.json")
	data := `{
		"persona": {"role": "Food Contractor"},
		"job_to_be_done": {"task": "Prepare a vegetarian buffet menu"},
		"documents": [{"filename": "dinner_mains.pdf"}, {"filename": "sides.pdf"}]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	pc, err := LoadPersona(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.Persona != "Food Contractor" {
		t.Errorf("expected object persona unwrapped, got %q", pc.Persona)
	}
	if pc.Job != "Prepare a vegetarian buffet menu" {
		t.Errorf("expected object job unwrapped, got %q", pc.Job)
	}
	if len(pc.Documents) != 2 || pc.Documents[1] != "sides.pdf" {
		t.Errorf("expected document list, got %v", pc.Documents)
	}
}

func TestLoadPersona_EmptyFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.json")
	if err := os.WriteFile(path, []byte(`{"persona": "", "job_to_be_done": ""}`), 0o644); err != nil {
		t.Fatal(err)
	}

	pc, err := LoadPersona(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.Persona != DefaultPersona || pc.Job != DefaultJob {
		t.Errorf("expected defaults for empty fields, got %+v", pc)
	}
}
