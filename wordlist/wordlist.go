// Package wordlist loads and validates the fill vocabulary: one candidate
// word per line, upper-cased and checked for letter-only content before
// the solver ever sees it.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize upper-cases a candidate word and verifies it contains only
// letters. Words with digits, punctuation, or embedded whitespace are a
// structural input error, not something to tolerate during propagation.
func Normalize(w string) (string, error) {
	// cases.Caser is stateful, so build one per call.
	w = cases.Upper(language.Und).String(strings.TrimSpace(w))
	if w == "" {
		return "", errors.New("wordlist: empty word")
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("wordlist: word %q contains non-letter %q", w, r)
		}
	}
	return w, nil
}

// Parse reads one word per line, skipping blank lines, normalizing each
// word and dropping duplicates. Order of first appearance is preserved.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		w, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: reading words: %w", err)
	}
	words = lo.Uniq(words)
	if len(words) == 0 {
		return nil, errors.New("wordlist: no words")
	}
	return words, nil
}

// Load reads a vocabulary file.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()
	words, err := Parse(f)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", len(words)).Str("path", path).Msg("loaded vocabulary")
	return words, nil
}
