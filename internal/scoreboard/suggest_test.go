package scoreboard

import "testing"

func TestSuggestFindsCloseName(t *testing.T) {
	b := NewBoard()
	if err := b.StartMatch("Mexico", "Canada"); err != nil {
		t.Fatalf("StartMatch: %v", err)
	}
	if got := b.Suggest("Mexcio"); got != "Mexico" {
		t.Errorf("Suggest(Mexcio) = %q, want Mexico", got)
	}
	if got := b.Suggest("canda"); got != "Canada" {
		t.Errorf("Suggest(canda) = %q, want Canada", got)
	}
}

func TestSuggestStaysQuietWhenNothingIsClose(t *testing.T) {
	b := NewBoard()
	if err := b.StartMatch("Mexico", "Canada"); err != nil {
		t.Fatalf("StartMatch: %v", err)
	}
	if got := b.Suggest("Liechtenstein"); got != "" {
		t.Errorf("Suggest(Liechtenstein) = %q, want empty", got)
	}
}

func TestSuggestSkipsExactName(t *testing.T) {
	b := NewBoard()
	if err := b.StartMatch("Mexico", "Canada"); err != nil {
		t.Fatalf("StartMatch: %v", err)
	}
	// the name itself being engaged is not a useful suggestion
	if got := b.Suggest("mexico"); got != "" {
		t.Errorf("Suggest(mexico) = %q, want empty", got)
	}
}
