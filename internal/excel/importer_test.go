package excel

import (
	"fmt"
	"testing"

	"github.com/example/voicetutor/pkg/models"
)

func TestParseRowValid(t *testing.T) {
	config := DefaultImportConfig()
	s, err := parseRow([]string{"2", "Food & Drinks", "I like tea.", "أحب الشاي."}, config)
	if err != nil {
		t.Fatalf("parseRow: %v", err)
	}
	if s.Level != 2 || s.Category != "Food & Drinks" {
		t.Errorf("parsed %+v", s)
	}
	if s.English != "I like tea." || s.Arabic != "أحب الشاي." {
		t.Errorf("sentences not trimmed correctly: %+v", s)
	}
}

func TestParseRowRejectsBadRows(t *testing.T) {
	config := DefaultImportConfig()

	cases := []struct {
		name string
		row  []string
	}{
		{"empty english", []string{"1", "Food & Drinks", "", ""}},
		{"bad level", []string{"x", "Food & Drinks", "I like tea.", ""}},
		{"level out of range", []string{"6", "Food & Drinks", "I like tea.", ""}},
		{"unknown category", []string{"1", "Quantum Physics", "I like tea.", ""}},
		{"short row", []string{"1"}},
	}
	for _, tc := range cases {
		if _, err := parseRow(tc.row, config); err == nil {
			t.Errorf("%s: parseRow accepted %v", tc.name, tc.row)
		}
	}
}

type fakeTranslator struct {
	fail bool
}

func (f *fakeTranslator) TranslateToArabic(text string) (string, error) {
	if f.fail {
		return "", fmt.Errorf("api unavailable")
	}
	return "ترجمة: " + text, nil
}

func TestFillTranslationsOnlyTouchesEmptyRows(t *testing.T) {
	batch := []models.BankSentence{
		{English: "I like tea.", Arabic: "أحب الشاي."},
		{English: "The sun is hot."},
	}
	result := &ImportResult{}

	fillTranslations(batch, &fakeTranslator{}, result)

	if batch[0].Arabic != "أحب الشاي." {
		t.Errorf("existing translation overwritten: %q", batch[0].Arabic)
	}
	if batch[1].Arabic != "ترجمة: The sun is hot." {
		t.Errorf("missing translation not filled: %q", batch[1].Arabic)
	}
	if result.Translated != 1 {
		t.Errorf("translated = %d, want 1", result.Translated)
	}
}

func TestFillTranslationsKeepsRowOnFailure(t *testing.T) {
	batch := []models.BankSentence{{English: "The sun is hot."}}
	result := &ImportResult{}

	fillTranslations(batch, &fakeTranslator{fail: true}, result)

	if batch[0].Arabic != "" {
		t.Errorf("failed translation wrote %q", batch[0].Arabic)
	}
	if result.Translated != 0 || len(result.Errors) != 1 {
		t.Errorf("result = %+v, want one reported error and no translations", result)
	}
}

func TestColumnToIndex(t *testing.T) {
	for col, want := range map[string]int{"A": 0, "B": 1, "D": 3, "Z": 25, "AA": 26} {
		if got := columnToIndex(col); got != want {
			t.Errorf("columnToIndex(%q) = %d, want %d", col, got, want)
		}
	}
}
