package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CharType classifies a character for word motions.
type CharType uint8

const (
	Whitespace  CharType = iota // spaces, tabs, other Unicode whitespace
	Word                        // letters, digits, underscore and anything not punctuation
	Punctuation                 // operators, brackets, quotes
)

// String returns the name of the character class.
func (t CharType) String() string {
	switch t {
	case Whitespace:
		return "whitespace"
	case Word:
		return "word"
	case Punctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// DefaultPunctuation is the set of characters that break words.
const DefaultPunctuation = "/:,.-(){}[];\"'<>=+*&|!@#$%^~`\\?"

// Classifier maps characters to their CharType.
// The zero value uses DefaultPunctuation.
type Classifier struct {
	punctuation string
}

// NewClassifier creates a classifier with a custom punctuation set.
// An empty set falls back to DefaultPunctuation.
func NewClassifier(punctuation string) Classifier {
	return Classifier{punctuation: punctuation}
}

// Classify returns the class of r.
func (c Classifier) Classify(r rune) CharType {
	if unicode.IsSpace(r) {
		return Whitespace
	}
	set := c.punctuation
	if set == "" {
		set = DefaultPunctuation
	}
	if strings.ContainsRune(set, r) {
		return Punctuation
	}
	return Word
}

// ClassifyCluster returns the class of a grapheme cluster, keyed off its
// first rune. Combining marks therefore inherit the class of their base.
func (c Classifier) ClassifyCluster(cluster string) CharType {
	r, _ := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError && len(cluster) == 0 {
		return Whitespace
	}
	return c.Classify(r)
}

// Classify returns the class of r using DefaultPunctuation.
func Classify(r rune) CharType {
	return Classifier{}.Classify(r)
}
