// Package words provides the word pool and the length classifier used to
// build a round. Both are plain data dependencies of the round engine.
package words

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// Category is the size bucket a word's length falls into.
type Category int

const (
	CategoryNone   Category = iota
	CategorySmall           // length <= Small
	CategoryMedium          // length <= Medium
	CategoryLarge           // length <= Large
	CategoryXL              // anything longer
)

// String returns the pad label for the category.
func (c Category) String() string {
	switch c {
	case CategorySmall:
		return "S"
	case CategoryMedium:
		return "M"
	case CategoryLarge:
		return "L"
	case CategoryXL:
		return "XL"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the four playable categories.
func (c Category) Valid() bool {
	return c >= CategorySmall && c <= CategoryXL
}

// Classifier maps a word to its Category by length thresholds.
type Classifier struct {
	Small  int `yaml:"small"`
	Medium int `yaml:"medium"`
	Large  int `yaml:"large"`
}

// DefaultClassifier returns the 3/5/8 thresholds.
func DefaultClassifier() Classifier {
	return Classifier{Small: 3, Medium: 5, Large: 8}
}

// Classify returns the category for text. Length is counted in runes.
func (c Classifier) Classify(text string) Category {
	n := utf8.RuneCountInString(text)
	switch {
	case n <= c.Small:
		return CategorySmall
	case n <= c.Medium:
		return CategoryMedium
	case n <= c.Large:
		return CategoryLarge
	default:
		return CategoryXL
	}
}

// Validate checks that the thresholds are positive and strictly increasing.
func (c Classifier) Validate() error {
	if c.Small <= 0 || c.Small >= c.Medium || c.Medium >= c.Large {
		return fmt.Errorf("words: thresholds must satisfy 0 < small < medium < large, got %d/%d/%d",
			c.Small, c.Medium, c.Large)
	}
	return nil
}

// ErrEmptyPool is returned when a pool would contain no words.
var ErrEmptyPool = errors.New("words: empty pool")

// Pool is a fixed set of tokens drawn uniformly with replacement.
type Pool struct {
	tokens []string
	rng    *rand.Rand
}

// NewPool normalizes tokens to upper case, drops blanks and duplicates and
// returns a pool drawing from rng.
func NewPool(tokens []string, rng *rand.Rand) (*Pool, error) {
	seen := make(map[string]struct{}, len(tokens))
	clean := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		clean = append(clean, t)
	}
	if len(clean) == 0 {
		return nil, ErrEmptyPool
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Pool{tokens: clean, rng: rng}, nil
}

// Draw returns one token chosen uniformly at random.
func (p *Pool) Draw() string {
	return p.tokens[p.rng.Intn(len(p.tokens))]
}

// Len returns the number of distinct tokens.
func (p *Pool) Len() int {
	return len(p.tokens)
}

// Tokens returns a copy of the pool contents.
func (p *Pool) Tokens() []string {
	out := make([]string, len(p.tokens))
	copy(out, p.tokens)
	return out
}
