package topics

import "testing"

func TestCurriculumShape(t *testing.T) {
	if len(Curriculum) != 31 {
		t.Fatalf("curriculum size = %d, want 31", len(Curriculum))
	}
	if Curriculum[0].Name != "Nouns" {
		t.Errorf("first topic = %q, want Nouns", Curriculum[0].Name)
	}
	if Curriculum[30].Name != "Phrasal verbs" {
		t.Errorf("last topic = %q, want Phrasal verbs", Curriculum[30].Name)
	}
	for i, topic := range Curriculum {
		if topic.ID != i+1 {
			t.Errorf("topic %q id = %d, want %d", topic.Name, topic.ID, i+1)
		}
		if topic.ArabicName == "" {
			t.Errorf("topic %q has no Arabic name", topic.Name)
		}
	}
}

func TestByName(t *testing.T) {
	got, ok := ByName("Nouns")
	if !ok || got.ID != 1 {
		t.Errorf("ByName(Nouns) = %+v, %v", got, ok)
	}
	// Free-text extraction yields arbitrary casing.
	if got, ok := ByName("nouns"); !ok || got.Name != "Nouns" {
		t.Errorf("lowercase lookup = %+v, %v, want the canonical entry", got, ok)
	}
	if _, ok := ByName("Quantum Physics"); ok {
		t.Error("unknown topic resolved")
	}
}

func TestNext(t *testing.T) {
	first, ok := Next(nil)
	if !ok || first.Name != "Nouns" {
		t.Errorf("new learner gets %q, want Nouns", first.Name)
	}

	next, ok := Next([]string{"Nouns", "Adjectives"})
	if !ok || next.Name != "Definite and Indefinite Articles" {
		t.Errorf("next = %q, want the first uncompleted topic in order", next.Name)
	}

	all := make([]string, len(Curriculum))
	for i, topic := range Curriculum {
		all[i] = topic.Name
	}
	if _, ok := Next(all); ok {
		t.Error("Next reported a topic after full completion")
	}
}

func TestSentenceCategories(t *testing.T) {
	if len(SentenceCategories) != SentenceCategoryCount {
		t.Fatalf("categories = %d, want %d", len(SentenceCategories), SentenceCategoryCount)
	}
	if !ValidSentenceCategory("Food & Drinks") {
		t.Error("known category rejected")
	}
	if ValidSentenceCategory("Quantum Physics") {
		t.Error("unknown category accepted")
	}
}
