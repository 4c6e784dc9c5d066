package rank

import (
	"strings"
	"testing"
)

func TestRefine_PicksQueryMatchedSentence(t *testing.T) {
	content := "The weather was mild for the season overall. " +
		"To create a fillable form open the prepare form tool and let it detect every single field on the page automatically. " +
		"Many people prefer printed copies anyway."

	got := Refine(content, "Create Fillable Forms", "HR professional. Create and manage fillable forms")
	if !strings.Contains(got, "prepare form tool") {
		t.Errorf("expected the on-topic sentence selected, got %q", got)
	}
	if strings.Contains(got, "weather") {
		t.Errorf("expected off-topic sentence excluded, got %q", got)
	}
}

func TestRefine_FallsBackToLeadingText(t *testing.T) {
	// Every sentence is too short to qualify, so the refiner falls back
	// to the leading text.
	content := strings.Repeat("Ab cd. ", 50)

	got := Refine(content, "Title", "query")
	if len([]rune(got)) != 200 {
		t.Errorf("expected 200-rune fallback, got %d runes", len([]rune(got)))
	}
}

func TestRefine_ShortContentReturnedWhole(t *testing.T) {
	got := Refine("tiny fragment", "Title", "query")
	if got != "tiny fragment" {
		t.Errorf("expected short content returned as is, got %q", got)
	}
}

func TestRefine_MergesShortWinnerWithRelatedSentence(t *testing.T) {
	content := "Open the form tool to create fields. " +
		"The form tool highlights every detected form field on the page so you can adjust each field before saving. " +
		"Unrelated trailing remark about something else entirely."

	got := Refine(content, "Create Forms", "create form fields")
	if !strings.Contains(got, "Open the form tool") {
		t.Errorf("expected the short winner kept, got %q", got)
	}
	if !strings.Contains(got, "highlights every detected") {
		t.Errorf("expected the related follow-up merged, got %q", got)
	}
	if len(got) > 400 {
		t.Errorf("expected merged excerpt capped at 400 chars, got %d", len(got))
	}
}

func TestSplitSentences_RequiresCapitalAfterBreak(t *testing.T) {
	got := splitSentences("Version 2.5 shipped in March. It fixed the forms editor.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "Version 2.5 shipped in March." {
		t.Errorf("expected decimal point kept inside sentence, got %q", got[0])
	}
}

func TestSplitSentences_TrailingTextKept(t *testing.T) {
	got := splitSentences("First point made here. and a trailing fragment without a capital")
	if len(got) != 1 {
		t.Fatalf("expected a single sentence when no break qualifies, got %v", got)
	}
}
