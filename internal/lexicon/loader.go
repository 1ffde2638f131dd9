package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Load builds a Lexicon from a word list, one word per line. Lines are
// lowercased and trimmed; lines shorter than MinWordLen or containing
// anything besides ASCII letters are dropped silently. Returns the number
// of words kept.
func Load(r io.Reader) (*Lexicon, int, error) {
	lex := New()
	kept := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if len(word) < MinWordLen || !isAlpha(word) {
			continue
		}
		lex.Add(word)
		kept++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to scan word list: %w", err)
	}

	return lex, kept, nil
}

// LoadFile loads a Lexicon from the word list at path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	lex, kept, err := Load(f)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Int("words", kept).Msg("Loaded word list")
	return lex, nil
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
