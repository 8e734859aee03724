// Package matcher counts regular expression occurrences in a line of text.
//
// Every configured search word is a regular expression. Patterns are compiled
// once per run into a Set and reused for every line of every file.
package matcher

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when a search word is not a valid regular expression
var ErrInvalidPattern = errors.New("invalid search pattern")

// InvalidPatternError carries the offending word and the compiler error
type InvalidPatternError struct {
	Word string
	Err  error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Word, e.Err)
}

func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Set is a list of compiled patterns aligned with the configured word list.
type Set struct {
	words    []string
	patterns []*regexp.Regexp
}

// Compile builds a Set from words, keeping their order and duplicates.
// The first invalid pattern aborts compilation with an *InvalidPatternError.
func Compile(words []string) (*Set, error) {
	set := &Set{
		words:    make([]string, len(words)),
		patterns: make([]*regexp.Regexp, len(words)),
	}
	copy(set.words, words)

	for i, word := range words {
		re, err := regexp.Compile(word)
		if err != nil {
			return nil, &InvalidPatternError{Word: word, Err: err}
		}
		set.patterns[i] = re
	}

	return set, nil
}

// Len returns the number of patterns in the set
func (s *Set) Len() int {
	return len(s.patterns)
}

// Word returns the source text of pattern i
func (s *Set) Word(i int) string {
	return s.words[i]
}

// Count returns the number of non-overlapping matches of pattern i in line.
func (s *Set) Count(i int, line string) int {
	return len(s.patterns[i].FindAllStringIndex(line, -1))
}

// CountOccurrences compiles word and counts its matches in line. Callers
// scanning many lines should use a Set instead.
func CountOccurrences(line, word string) (int, error) {
	re, err := regexp.Compile(word)
	if err != nil {
		return 0, &InvalidPatternError{Word: word, Err: err}
	}
	return len(re.FindAllStringIndex(line, -1)), nil
}
