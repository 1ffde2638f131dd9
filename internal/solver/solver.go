// Package solver runs the dictionary-constrained exhaustive search over
// the board and assembles the clue line from what it finds.
package solver

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/steved1964/scroggle-clue-site/internal/board"
	"github.com/steved1964/scroggle-clue-site/internal/lexicon"
)

// ClueMark terminates every clue line.
const ClueMark = "✔️"

// Result holds every distinct word found in one run, plus a histogram of
// the words' two-letter prefixes. A word is counted into the histogram
// exactly once, when it is first found.
type Result struct {
	Words    map[string]struct{}
	Prefixes map[string]int
}

// Count returns the number of distinct words found.
func (r *Result) Count() int {
	return len(r.Words)
}

// ClueLine renders the prefix histogram as "{count}{prefix}" tokens in
// ascending prefix order, space-joined, with the clue mark appended. An
// empty histogram yields the bare mark.
func (r *Result) ClueLine() string {
	if len(r.Prefixes) == 0 {
		return ClueMark
	}

	keys := make([]string, 0, len(r.Prefixes))
	for k := range r.Prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(strconv.Itoa(r.Prefixes[k]))
		sb.WriteString(k)
		sb.WriteByte(' ')
	}
	sb.WriteString(ClueMark)
	return sb.String()
}

// search carries the mutable state of one run: the current path, the
// cells on it, and the shared result all 49 origin searches feed.
type search struct {
	board   *board.Board
	lex     *lexicon.Lexicon
	visited [board.Size][board.Size]bool
	path    []board.Tile
	result  *Result
}

// Solve searches the board from every cell and returns every distinct
// dictionary word of at least lexicon.MinWordLen letters reachable by a
// simple path of hex-adjacent tiles.
func Solve(b *board.Board, lex *lexicon.Lexicon) *Result {
	s := &search{
		board: b,
		lex:   lex,
		path:  make([]board.Tile, 0, board.Size*board.Size),
		result: &Result{
			Words:    make(map[string]struct{}),
			Prefixes: make(map[string]int),
		},
	}

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			s.explore(r, c, lex.Root())
		}
	}

	log.Debug().Int("words", s.result.Count()).Msg("Board search complete")
	return s.result
}

// explore extends the current path onto (r, c), walking the cell's tile
// letters through the lexicon from node. A missing transition prunes the
// branch before the cell is marked, so every mark below is matched by the
// deferred-style unmark at the end.
func (s *search) explore(r, c int, node *lexicon.Node) {
	tile := s.board[r][c]
	for i := 0; i < len(tile); i++ {
		node = s.lex.Step(node, tile[i])
		if node == nil {
			return
		}
	}

	s.visited[r][c] = true
	s.path = append(s.path, tile)

	if node.Terminal() {
		word := strings.Join(s.path, "")
		if len(word) >= lexicon.MinWordLen {
			if _, seen := s.result.Words[word]; !seen {
				s.result.Words[word] = struct{}{}
				s.result.Prefixes[word[:2]]++
			}
		}
	}

	for _, n := range s.board.Neighbors(r, c) {
		if !s.visited[n.Row][n.Col] {
			s.explore(n.Row, n.Col, node)
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.visited[r][c] = false
}
