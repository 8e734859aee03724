package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name string
		line string
		word string
		want int
	}{
		{"plain word", "cat dog cat", "cat", 2},
		{"no match", "cat dog", "bird", 0},
		{"non-overlapping", "aaaa", "aa", 2},
		{"regex alternation", "cat dog bird", "cat|dog", 2},
		{"regex class", "a1 b2 c3", `[a-z]\d`, 3},
		{"case sensitive as received", "Cat cat", "cat", 1},
		{"empty line", "", "cat", 0},
		{"word boundary", "concat cat", `\bcat\b`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountOccurrences(tt.line, tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountOccurrencesInvalidPattern(t *testing.T) {
	_, err := CountOccurrences("anything", "[unclosed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	var patternErr *InvalidPatternError
	require.True(t, errors.As(err, &patternErr))
	assert.Equal(t, "[unclosed", patternErr.Word)
}

func TestCompile(t *testing.T) {
	set, err := Compile([]string{"cat", "dog", "cat"})
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, "dog", set.Word(1))
	assert.Equal(t, 2, set.Count(0, "cat cat dog"))
	assert.Equal(t, 1, set.Count(1, "cat cat dog"))
	assert.Equal(t, 2, set.Count(2, "cat cat dog"))
}

func TestCompileRejectsInvalidPattern(t *testing.T) {
	set, err := Compile([]string{"ok", "(bad", "fine"})
	assert.Nil(t, set)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "(bad")
}

func TestCompileEmpty(t *testing.T) {
	set, err := Compile(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}
