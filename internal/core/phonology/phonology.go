// Package phonology extracts phonological features from Shuar words and
// computes pairwise phonological similarity.
//
// The Shuar vowel system has three classes: oral (a e i u), nasal
// (a e i u with acute accents), and laryngealized (a e i u with
// diaeresis). There is no "o". Three digraphs (ch sh ts) each stand
// for a single sound unit.
package phonology

import (
	"strings"

	perr "shuardict/internal/platform/errors"

	"golang.org/x/text/unicode/norm"
)

// VocalType is one of the three Shuar vowel classes
type VocalType string

const (
	// VocalOral marks plain vowels (a e i u)
	VocalOral VocalType = "oral"
	// VocalNasal marks nasal vowels (á é í ú)
	VocalNasal VocalType = "nasal"
	// VocalLaryngealized marks laryngealized vowels (ä ë ï ü)
	VocalLaryngealized VocalType = "laryngealized"
)

// Shuar phonological inventory
var (
	oralVowels          = runeSet("aeiu")
	nasalVowels         = runeSet("áéíú")
	laryngealizedVowels = runeSet("äëïü")
	consonants          = runeSet("ptksjmnrwy")

	// digraphs in fixed scan order
	digraphs = []string{"ch", "sh", "ts"}
)

// ipaTable maps orthography to the simplified IPA-like respelling.
// Digraphs are checked before single characters during transcription.
var ipaTable = map[string]string{
	// oral vowels
	"a": "a", "e": "e", "i": "i", "u": "u",
	// nasal vowels
	"á": "ã", "é": "ẽ", "í": "ĩ", "ú": "ũ",
	// laryngealized vowels
	"ä": "aʔ", "ë": "eʔ", "ï": "iʔ", "ü": "uʔ",
	// consonants
	"p": "p", "t": "t", "k": "k", "s": "s", "j": "h",
	"m": "m", "n": "n", "r": "ɾ", "w": "w", "y": "j",
	// digraphs
	"ch": "tʃ", "sh": "ʃ", "ts": "ts",
}

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

func isVowel(r rune) bool {
	return oralVowels[r] || nasalVowels[r] || laryngealizedVowels[r]
}

// Features is the transient analysis result for a single word.
// Created fresh per Analyze call and never mutated afterwards.
type Features struct {
	VocalTypes        map[VocalType]bool
	HasDigraphs       bool
	Digraphs          []string
	ConsonantClusters []string
	SyllableCount     int
	SyllablePattern   string
	Complexity        float64
}

// Info is the persisted-shape phonological record embedded in Word entities
type Info struct {
	IPA                    string      `json:"ipa_transcription"`
	HasNasalVowels         bool        `json:"has_nasal_vowels"`
	HasLaryngealizedVowels bool        `json:"has_laryngealized_vowels"`
	VocalTypes             []VocalType `json:"vocal_types_present"`
	Syllables              int         `json:"number_of_syllables"`
	SyllablePattern        string      `json:"syllable_pattern"`
}

// Fold normalizes a word for analysis: NFC so combining diacritics match
// the precomposed vowel tables, then lowercase and trim
func Fold(word string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(word)))
}

// Analyze extracts the phonological features of a Shuar word.
// Returns a validation error when word is empty after trimming.
func Analyze(word string) (Features, error) {
	w := Fold(word)
	if w == "" {
		return Features{}, perr.Validationf("word cannot be empty")
	}

	types := detectVocalTypes(w)
	dg := detectDigraphs(w)
	clusters := detectConsonantClusters(w)
	syllables := countSyllables(w)

	f := Features{
		VocalTypes:        types,
		HasDigraphs:       len(dg) > 0,
		Digraphs:          dg,
		ConsonantClusters: clusters,
		SyllableCount:     syllables,
		SyllablePattern:   syllablePattern(w),
	}
	f.Complexity = complexity(f)
	return f, nil
}

// detectVocalTypes scans characters against the three fixed vowel sets
func detectVocalTypes(w string) map[VocalType]bool {
	types := make(map[VocalType]bool, 3)
	for _, r := range w {
		switch {
		case oralVowels[r]:
			types[VocalOral] = true
		case nasalVowels[r]:
			types[VocalNasal] = true
		case laryngealizedVowels[r]:
			types[VocalLaryngealized] = true
		}
	}
	return types
}

// detectDigraphs counts each digraph's non-overlapping occurrences,
// repeating the digraph once per occurrence found
func detectDigraphs(w string) []string {
	var found []string
	for _, d := range digraphs {
		for i := strings.Count(w, d); i > 0; i-- {
			found = append(found, d)
		}
	}
	return found
}

// maskDigraphs replaces digraphs with a placeholder consonant so they are
// never mistaken for vowel sequences or split across classifications
func maskDigraphs(w string) string {
	for _, d := range digraphs {
		w = strings.ReplaceAll(w, d, "X")
	}
	return w
}

// detectConsonantClusters returns maximal consonant runs of length > 1
func detectConsonantClusters(w string) []string {
	masked := maskDigraphs(w)
	var clusters []string
	var cur []rune
	for _, r := range masked {
		if consonants[r] || r == 'X' {
			cur = append(cur, r)
			continue
		}
		if len(cur) > 1 {
			clusters = append(clusters, string(cur))
		}
		cur = cur[:0]
	}
	if len(cur) > 1 {
		clusters = append(clusters, string(cur))
	}
	return clusters
}

// countSyllables counts maximal vowel runs; every word has at least one syllable
func countSyllables(w string) int {
	masked := maskDigraphs(w)
	count := 0
	prevVowel := false
	for _, r := range masked {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if count < 1 {
		return 1
	}
	return count
}

// syllablePattern maps vowels to V and consonants (digraphs included) to C
func syllablePattern(w string) string {
	masked := maskDigraphs(w)
	var b strings.Builder
	for _, r := range masked {
		switch {
		case isVowel(r):
			b.WriteByte('V')
		case consonants[r] || r == 'X':
			b.WriteByte('C')
		}
	}
	return b.String()
}

// complexity is a weighted sum clamped to [0,1]:
// syllable count (capped at 0.3), vowel-class diversity, digraph count,
// cluster count, and a 0.2 bonus for laryngealized vowels
func complexity(f Features) float64 {
	c := float64(f.SyllableCount) * 0.1
	if c > 0.3 {
		c = 0.3
	}
	c += float64(len(f.VocalTypes)) * 0.1
	c += float64(len(f.Digraphs)) * 0.1
	c += float64(len(f.ConsonantClusters)) * 0.15
	if f.VocalTypes[VocalLaryngealized] {
		c += 0.2
	}
	if c > 1.0 {
		return 1.0
	}
	return c
}

// Transcribe produces the IPA-like respelling of a word. The scan is greedy
// left to right, checking two-character digraphs before single characters;
// unknown characters pass through unchanged. Empty input yields "".
func Transcribe(word string) string {
	w := []rune(Fold(word))
	var b strings.Builder
	for i := 0; i < len(w); {
		if i+1 < len(w) {
			pair := string(w[i : i+2])
			if ipa, ok := ipaTable[pair]; ok && isDigraph(pair) {
				b.WriteString(ipa)
				i += 2
				continue
			}
		}
		ch := string(w[i])
		if ipa, ok := ipaTable[ch]; ok {
			b.WriteString(ipa)
		} else {
			b.WriteString(ch)
		}
		i++
	}
	return b.String()
}

func isDigraph(s string) bool {
	for _, d := range digraphs {
		if s == d {
			return true
		}
	}
	return false
}

// NewInfo analyzes a word into its persisted-shape phonological record
func NewInfo(word string) (Info, error) {
	f, err := Analyze(word)
	if err != nil {
		return Info{}, err
	}
	return Info{
		IPA:                    Transcribe(word),
		HasNasalVowels:         f.VocalTypes[VocalNasal],
		HasLaryngealizedVowels: f.VocalTypes[VocalLaryngealized],
		VocalTypes:             SortedTypes(f.VocalTypes),
		Syllables:              f.SyllableCount,
		SyllablePattern:        f.SyllablePattern,
	}, nil
}

// SortedTypes returns the set as a stable slice (oral, nasal, laryngealized order)
func SortedTypes(set map[VocalType]bool) []VocalType {
	var out []VocalType
	for _, t := range []VocalType{VocalOral, VocalNasal, VocalLaryngealized} {
		if set[t] {
			out = append(out, t)
		}
	}
	return out
}

// TypeSet converts a stored vocal-type list back into a set
func TypeSet(types []VocalType) map[VocalType]bool {
	set := make(map[VocalType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// TypeJaccard is the Jaccard similarity of two vocal-type sets.
// Two empty sets are identical (1.0).
func TypeJaccard(a, b map[VocalType]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	inter, union := 0, 0
	for _, t := range []VocalType{VocalOral, VocalNasal, VocalLaryngealized} {
		switch {
		case a[t] && b[t]:
			inter++
			union++
		case a[t] || b[t]:
			union++
		}
	}
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// Similarity blends four comparisons into a score in [0,1]:
// vocal-type Jaccard (30%), syllable-count closeness (20%),
// syllable-pattern edit distance (25%), transcription edit distance (25%).
// Either word empty scores 0.
func Similarity(word1, word2 string) float64 {
	if Fold(word1) == "" || Fold(word2) == "" {
		return 0.0
	}
	f1, err := Analyze(word1)
	if err != nil {
		return 0.0
	}
	f2, err := Analyze(word2)
	if err != nil {
		return 0.0
	}

	score := TypeJaccard(f1.VocalTypes, f2.VocalTypes) * 0.3
	score += syllableCloseness(f1.SyllableCount, f2.SyllableCount) * 0.2
	score += patternSimilarity(f1.SyllablePattern, f2.SyllablePattern) * 0.25
	score += LevenshteinSimilarity(Transcribe(word1), Transcribe(word2)) * 0.25

	if score > 1.0 {
		return 1.0
	}
	return score
}

// syllableCloseness is 1 - |Δ| / max(count1, count2)
func syllableCloseness(c1, c2 int) float64 {
	if c1 == c2 {
		return 1.0
	}
	diff := c1 - c2
	if diff < 0 {
		diff = -diff
	}
	mx := c1
	if c2 > mx {
		mx = c2
	}
	s := 1.0 - float64(diff)/float64(mx)
	if s < 0 {
		return 0.0
	}
	return s
}

func patternSimilarity(p1, p2 string) float64 {
	if p1 == p2 {
		return 1.0
	}
	if p1 == "" || p2 == "" {
		return 0.0
	}
	return LevenshteinSimilarity(p1, p2)
}
