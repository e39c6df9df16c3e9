package textutil

import "testing"

func TestSimilarityExactMatch(t *testing.T) {
	if got := Similarity("hello world", "hello world"); got != 100 {
		t.Errorf("Similarity = %d, want 100", got)
	}
}

func TestSimilarityIgnoresCaseAndPunctuation(t *testing.T) {
	if got := Similarity("Hello, World!", "hello world"); got != 100 {
		t.Errorf("Similarity = %d, want 100", got)
	}
	if got := Similarity("I'm fine.", "im fine"); got != 100 {
		t.Errorf("apostrophe form: Similarity = %d, want 100", got)
	}
}

func TestSimilarityEmptyInputs(t *testing.T) {
	if got := Similarity("hello", ""); got != 0 {
		t.Errorf("empty transcript: Similarity = %d, want 0", got)
	}
	if got := Similarity("", ""); got != 100 {
		t.Errorf("both empty: Similarity = %d, want 100", got)
	}
	// Punctuation-only transcript normalizes to empty.
	if got := Similarity("hello", "?!"); got != 0 {
		t.Errorf("punctuation transcript: Similarity = %d, want 0", got)
	}
}

func TestSimilarityPartial(t *testing.T) {
	// "cat" vs "car": distance 1 over length 3.
	if got := Similarity("cat", "car"); got != 67 {
		t.Errorf("Similarity(cat, car) = %d, want 67", got)
	}
	// One dropped letter in a longer phrase barely costs anything.
	if got := Similarity("pronunciation", "pronunciatio"); got < 90 {
		t.Errorf("near miss scored %d", got)
	}
}

func TestSimilarityUnrelated(t *testing.T) {
	if got := Similarity("apple", "zzzzz"); got > 20 {
		t.Errorf("unrelated words scored %d", got)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"the weather is nice", "the whether is nice"},
		{"good morning", "good mornin"},
	}
	for _, p := range pairs {
		if a, b := Similarity(p[0], p[1]), Similarity(p[1], p[0]); a != b {
			t.Errorf("Similarity(%q, %q) = %d but reversed = %d", p[0], p[1], a, b)
		}
	}
}
