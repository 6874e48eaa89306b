package analysis

import (
	"sort"

	"github.com/SeamusWaldron/rubik2d"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	StartIndex int   `json:"start_index"`
	TsMs       int64 `json:"ts_ms"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// Token packs a move into 0..17: face*3 plus 0, 1, 2 for clockwise,
// counter-clockwise and half turns.
func Token(m rubik.Move) uint8 {
	var k uint8
	switch m.Magnitude {
	case rubik.CounterClockwise:
		k = 1
	case rubik.Half:
		k = 2
	}
	return uint8(m.Face)*3 + k
}

// MoveFromToken reverses Token.
func MoveFromToken(t uint8) rubik.Move {
	mags := [3]rubik.Magnitude{rubik.Clockwise, rubik.CounterClockwise, rubik.Half}
	return rubik.Move{Face: rubik.Face(t / 3), Magnitude: mags[t%3]}
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll appends a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent repeated n-grams for each n in
// [minN, maxN]. Ties keep first-seen order.
func MineNGrams(records []storage.MoveRecord, minN, maxN, topK int) (*NGramReport, error) {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	tokens := make([]uint8, len(records))
	for i, r := range records {
		m, err := r.ToMove()
		if err != nil {
			return nil, err
		}
		tokens[i] = Token(m)
	}

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		if n <= 0 {
			continue
		}
		if ngrams := mineNGramsForN(tokens, records, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report, nil
}

func mineNGramsForN(tokens []uint8, records []storage.MoveRecord, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		occ := NGramOccurrence{StartIndex: records[start].MoveIndex, TsMs: records[start].TsMs}
		window := rh.Window()

		var entry *ngramEntry
		for _, e := range counts[rh.Hash()] {
			if slicesEqual(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window}
			counts[rh.Hash()] = append(counts[rh.Hash()], entry)
			order = append(order, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	var repeated []*ngramEntry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		sequence := make([]string, len(e.tokens))
		for j, t := range e.tokens {
			sequence[j] = MoveFromToken(t).Notation()
		}
		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
