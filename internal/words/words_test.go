package words

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestClassifyThresholds(t *testing.T) {
	c := DefaultClassifier()
	for n := 1; n <= 14; n++ {
		word := strings.Repeat("A", n)
		var want Category
		switch {
		case n <= 3:
			want = CategorySmall
		case n <= 5:
			want = CategoryMedium
		case n <= 8:
			want = CategoryLarge
		default:
			want = CategoryXL
		}
		if got := c.Classify(word); got != want {
			t.Errorf("Classify(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestClassifyPoolSamples(t *testing.T) {
	c := DefaultClassifier()
	tests := []struct {
		word string
		want Category
	}{
		{"I", CategorySmall},
		{"LOG", CategorySmall},
		{"USER", CategoryMedium},
		{"ALPHA", CategoryMedium},
		{"TARGET", CategoryLarge},
		{"PROTOCOL", CategoryLarge},
		{"LIQUIDATE", CategoryXL},
		{"WASHINGTON", CategoryXL},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := c.Classify(tt.word); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestClassifyCountsRunes(t *testing.T) {
	c := DefaultClassifier()
	// 3 runes, 6 bytes
	if got := c.Classify("ÄÖÜ"); got != CategorySmall {
		t.Errorf("Classify(ÄÖÜ) = %v, want %v", got, CategorySmall)
	}
}

func TestClassifierValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Classifier
		wantErr bool
	}{
		{"default", DefaultClassifier(), false},
		{"zero small", Classifier{0, 5, 8}, true},
		{"not increasing", Classifier{3, 3, 8}, true},
		{"inverted", Classifier{8, 5, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategoryValid(t *testing.T) {
	if CategoryNone.Valid() {
		t.Error("CategoryNone should not be valid")
	}
	if Category(5).Valid() {
		t.Error("Category(5) should not be valid")
	}
	for c := CategorySmall; c <= CategoryXL; c++ {
		if !c.Valid() {
			t.Errorf("%v should be valid", c)
		}
	}
}

func TestNewPoolNormalizes(t *testing.T) {
	p, err := NewPool([]string{"code", " KEY ", "", "Code", "key", "  "}, nil)
	if err != nil {
		t.Fatalf("NewPool() failed: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (tokens %v)", p.Len(), p.Tokens())
	}
	got := p.Tokens()
	if got[0] != "CODE" || got[1] != "KEY" {
		t.Errorf("Tokens() = %v, want [CODE KEY]", got)
	}
}

func TestNewPoolEmpty(t *testing.T) {
	_, err := NewPool([]string{"", "   "}, nil)
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("NewPool() error = %v, want ErrEmptyPool", err)
	}
}

func TestPoolDrawDeterministic(t *testing.T) {
	tokens := []string{"ONE", "TWO", "THREE", "FOUR", "FIVE"}
	p1, _ := NewPool(tokens, rand.New(rand.NewSource(42)))
	p2, _ := NewPool(tokens, rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		a, b := p1.Draw(), p2.Draw()
		if a != b {
			t.Fatalf("draw %d differs: %q vs %q", i, a, b)
		}
	}
}

func TestPoolDrawCoversPool(t *testing.T) {
	tokens := []string{"A", "BB", "CCC"}
	p, _ := NewPool(tokens, rand.New(rand.NewSource(7)))

	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		seen[p.Draw()] = true
	}
	for _, tok := range tokens {
		if !seen[tok] {
			t.Errorf("token %q never drawn in 300 draws", tok)
		}
	}
}

func TestTokensReturnsCopy(t *testing.T) {
	p, _ := NewPool([]string{"ONE"}, nil)
	toks := p.Tokens()
	toks[0] = "CHANGED"
	if p.Tokens()[0] != "ONE" {
		t.Error("Tokens() should return a copy")
	}
}
