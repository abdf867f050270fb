// Package similarity implements similarity search over Shuar words:
// blended phonological/morphological/semantic scoring, rhyme matching,
// minimal-pair detection, and pattern grouping.
//
// The package operates on value types supplied by the caller; it never
// touches storage itself.
package similarity

import (
	"fmt"
	"sort"
	"strings"

	"shuardict/internal/core/phonology"
	perr "shuardict/internal/platform/errors"
)

// Word is a candidate in a similarity search. Phonology and Morphology
// are optional; operations that need them skip or default candidates
// without them.
type Word struct {
	Text       string
	Phonology  *phonology.Info
	Morphology *Morphology
}

// Morphology is the decomposed structure of an agglutinated word
type Morphology struct {
	Root     string
	Suffixes []string
}

// Score is a validated similarity value object. Construct with NewScore;
// the zero value is not valid.
type Score struct {
	Phonological  float64 `json:"phonological_similarity"`
	Morphological float64 `json:"morphological_similarity"`
	Semantic      float64 `json:"semantic_similarity"`
	Overall       float64 `json:"overall_similarity"`
}

// Component weights for the overall score
const (
	phonologicalWeight  = 0.4
	morphologicalWeight = 0.3
	semanticWeight      = 0.3

	// maximum drift allowed between Overall and the recomputed blend
	overallTolerance = 0.1
)

// NewScore blends the three component scores into an overall score
func NewScore(phonological, morphological, semantic float64) (Score, error) {
	s := Score{
		Phonological:  phonological,
		Morphological: morphological,
		Semantic:      semantic,
		Overall: phonological*phonologicalWeight +
			morphological*morphologicalWeight +
			semantic*semanticWeight,
	}
	if err := s.Validate(); err != nil {
		return Score{}, err
	}
	return s, nil
}

// Validate checks component ranges and that Overall is consistent with
// the weighted blend of the components
func (s Score) Validate() error {
	for _, v := range []float64{s.Phonological, s.Morphological, s.Semantic, s.Overall} {
		if v < 0.0 || v > 1.0 {
			return perr.Validationf("all similarity scores must be between 0.0 and 1.0")
		}
	}
	expected := s.Phonological*phonologicalWeight +
		s.Morphological*morphologicalWeight +
		s.Semantic*semanticWeight
	drift := s.Overall - expected
	if drift < 0 {
		drift = -drift
	}
	if drift > overallTolerance {
		return perr.Validationf("overall similarity score is inconsistent with component scores")
	}
	return nil
}

// Level buckets the overall score: high >= 0.7, moderate >= 0.4, else low
func (s Score) Level() string {
	switch {
	case s.Overall >= 0.7:
		return "high"
	case s.Overall >= 0.4:
		return "moderate"
	default:
		return "low"
	}
}

// Criteria tunes a similarity search
type Criteria struct {
	MinSimilarity        float64
	MaxResults           int
	IncludeMorphological bool
}

// DefaultCriteria returns the standard search settings
func DefaultCriteria() Criteria {
	return Criteria{
		MinSimilarity:        0.3,
		MaxResults:           10,
		IncludeMorphological: true,
	}
}

// Match is one similarity search hit
type Match struct {
	Word        Word
	Score       Score
	Explanation string
}

// FindSimilar ranks candidates against the target word. Exact text matches
// are skipped, results below the threshold are dropped, and the remainder
// is sorted by overall score descending and truncated to MaxResults.
// Semantic similarity is a fixed neutral 0.5 until semantic vectors exist.
func FindSimilar(target string, candidates []Word, c Criteria) ([]Match, error) {
	t := phonology.Fold(target)
	if t == "" {
		return nil, perr.Validationf("target word cannot be empty")
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var matches []Match
	for _, cand := range candidates {
		if phonology.Fold(cand.Text) == t {
			continue
		}

		phon := phonology.Similarity(t, cand.Text)
		morph := 0.5
		if c.IncludeMorphological && cand.Morphology != nil {
			morph = morphScore(t, cand)
		}

		score, err := NewScore(phon, morph, 0.5)
		if err != nil {
			return nil, err
		}
		if score.Overall < c.MinSimilarity {
			continue
		}
		matches = append(matches, Match{
			Word:        cand,
			Score:       score,
			Explanation: explainMatch(t, score),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.Overall > matches[j].Score.Overall
	})
	if c.MaxResults > 0 && len(matches) > c.MaxResults {
		matches = matches[:c.MaxResults]
	}
	return matches, nil
}

// shuar suffix inventory used when the target has no stored morphology
var knownSuffixes = []string{"ni", "ai", "ka", "ma", "ta", "nu", "tu", "chi", "tsu"}

func extractSuffixes(word string) map[string]bool {
	found := make(map[string]bool)
	for _, s := range knownSuffixes {
		if strings.HasSuffix(word, s) {
			found[s] = true
		}
	}
	return found
}

// morphScore blends suffix-set overlap (70%) with length closeness (30%)
func morphScore(target string, cand Word) float64 {
	if cand.Morphology == nil {
		return 0.5
	}

	targetSuffixes := extractSuffixes(target)
	candSuffixes := make(map[string]bool, len(cand.Morphology.Suffixes))
	for _, s := range cand.Morphology.Suffixes {
		candSuffixes[s] = true
	}

	suffixSim := 0.5
	if len(targetSuffixes) > 0 || len(candSuffixes) > 0 {
		suffixSim = setJaccard(targetSuffixes, candSuffixes)
	}

	tl, cl := len([]rune(target)), len([]rune(cand.Text))
	mx := tl
	if cl > mx {
		mx = cl
	}
	lengthSim := 1.0
	if mx > 0 {
		diff := tl - cl
		if diff < 0 {
			diff = -diff
		}
		lengthSim = 1.0 - float64(diff)/float64(mx)
	}

	return suffixSim*0.7 + lengthSim*0.3
}

func setJaccard(a, b map[string]bool) float64 {
	inter, union := 0, 0
	seen := make(map[string]bool, len(a)+len(b))
	for s := range a {
		seen[s] = true
	}
	for s := range b {
		seen[s] = true
	}
	for s := range seen {
		union++
		if a[s] && b[s] {
			inter++
		}
	}
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

func explainMatch(target string, s Score) string {
	var reasons []string
	if s.Phonological > 0.7 {
		reasons = append(reasons, "similar sound patterns")
	} else if s.Phonological > 0.5 {
		reasons = append(reasons, "some sound similarities")
	}
	if s.Morphological > 0.7 {
		reasons = append(reasons, "similar word structure")
	} else if s.Morphological > 0.5 {
		reasons = append(reasons, "related morphological patterns")
	}
	if s.Semantic > 0.7 {
		reasons = append(reasons, "related meaning")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "general linguistic patterns")
	}

	level := s.Level()
	return fmt.Sprintf("%s similarity to '%s': %s",
		strings.ToUpper(level[:1])+level[1:], target, strings.Join(reasons, ", "))
}

// FilterByVocalTypes keeps candidates whose stored vocal-type set has
// Jaccard similarity >= minSimilarity with the target set. Candidates
// without phonological info are dropped.
func FilterByVocalTypes(target []phonology.VocalType, candidates []Word, minSimilarity float64) []Word {
	if len(target) == 0 {
		return nil
	}
	targetSet := phonology.TypeSet(target)

	var out []Word
	for _, cand := range candidates {
		if cand.Phonology == nil {
			continue
		}
		j := phonology.TypeJaccard(targetSet, phonology.TypeSet(cand.Phonology.VocalTypes))
		if j >= minSimilarity {
			out = append(out, cand)
		}
	}
	return out
}

// FilterByMorphology keeps candidates whose morphological structure scores
// >= minSimilarity against the target: root phonological similarity (60%)
// plus suffix-set overlap (40%, two empty sets counting as identical).
// Returns nil when the target itself has no morphology.
func FilterByMorphology(target Word, candidates []Word, minSimilarity float64) []Word {
	if target.Morphology == nil {
		return nil
	}
	targetSuffixes := make(map[string]bool, len(target.Morphology.Suffixes))
	for _, s := range target.Morphology.Suffixes {
		targetSuffixes[s] = true
	}

	var out []Word
	for _, cand := range candidates {
		if cand.Morphology == nil {
			continue
		}
		candSuffixes := make(map[string]bool, len(cand.Morphology.Suffixes))
		for _, s := range cand.Morphology.Suffixes {
			candSuffixes[s] = true
		}

		rootSim := phonology.Similarity(target.Morphology.Root, cand.Morphology.Root)
		suffixSim := 1.0 // both bare roots
		if len(targetSuffixes) > 0 || len(candSuffixes) > 0 {
			suffixSim = setJaccard(targetSuffixes, candSuffixes)
		}

		if rootSim*0.6+suffixSim*0.4 >= minSimilarity {
			out = append(out, cand)
		}
	}
	return out
}

// FindRhyming keeps candidates whose rhyme score against the target
// exceeds 0.6. The score compares up to minSyllablesMatch*2 trailing
// characters positionally, with a 0.2 bonus for equal syllable counts.
func FindRhyming(target string, candidates []Word, minSyllablesMatch int) ([]Word, error) {
	t := phonology.Fold(target)
	if t == "" {
		return nil, nil
	}
	targetFeats, err := phonology.Analyze(t)
	if err != nil {
		return nil, err
	}

	var out []Word
	for _, cand := range candidates {
		candText := phonology.Fold(cand.Text)
		if candText == "" {
			continue
		}
		candFeats, err := phonology.Analyze(candText)
		if err != nil {
			return nil, err
		}
		if rhymeScore(t, candText, targetFeats, candFeats, minSyllablesMatch) > 0.6 {
			out = append(out, cand)
		}
	}
	return out, nil
}

func rhymeScore(w1, w2 string, f1, f2 phonology.Features, minSyllablesMatch int) float64 {
	r1, r2 := []rune(w1), []rune(w2)
	minLen := len(r1)
	if len(r2) < minLen {
		minLen = len(r2)
	}
	maxMatch := minSyllablesMatch * 2 // rough syllable width
	if minLen < maxMatch {
		maxMatch = minLen
	}
	if maxMatch == 0 {
		return 0.0
	}

	end1 := r1[len(r1)-maxMatch:]
	end2 := r2[len(r2)-maxMatch:]
	matches := 0
	for i := range end1 {
		if end1[i] == end2[i] {
			matches++
		}
	}
	score := float64(matches) / float64(maxMatch)
	if f1.SyllableCount == f2.SyllableCount {
		score += 0.2
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}

// Pair is a minimal pair: two words separated by few phonological features
type Pair struct {
	A, B Word
}

// FindMinimalPairs returns all pairs separated by at most maxDifferences.
// Words lacking phonological info never pair.
func FindMinimalPairs(words []Word, maxDifferences int) []Pair {
	var pairs []Pair
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			if d, ok := phonologicalDifferences(words[i], words[j]); ok && d <= maxDifferences {
				pairs = append(pairs, Pair{A: words[i], B: words[j]})
			}
		}
	}
	return pairs
}

// phonologicalDifferences counts vocal-type set differences, a syllable
// count mismatch, and per-position transcription mismatches including the
// length overhang. Returns ok=false when either word has no stored info.
func phonologicalDifferences(w1, w2 Word) (int, bool) {
	if w1.Phonology == nil || w2.Phonology == nil {
		return 0, false
	}

	diff := 0
	t1 := phonology.TypeSet(w1.Phonology.VocalTypes)
	t2 := phonology.TypeSet(w2.Phonology.VocalTypes)
	for _, vt := range []phonology.VocalType{phonology.VocalOral, phonology.VocalNasal, phonology.VocalLaryngealized} {
		if t1[vt] != t2[vt] {
			diff++
		}
	}

	if w1.Phonology.Syllables != w2.Phonology.Syllables {
		diff++
	}

	ipa1, ipa2 := []rune(w1.Phonology.IPA), []rune(w2.Phonology.IPA)
	mx := len(ipa1)
	if len(ipa2) > mx {
		mx = len(ipa2)
	}
	for i := 0; i < mx; i++ {
		if i >= len(ipa1) || i >= len(ipa2) || ipa1[i] != ipa2[i] {
			diff++
		}
	}
	return diff, true
}

// GroupByPattern buckets words by syllable pattern plus sorted vocal types.
// Words without phonological info are left out.
func GroupByPattern(words []Word) map[string][]Word {
	groups := make(map[string][]Word)
	for _, w := range words {
		if w.Phonology == nil {
			continue
		}
		types := make([]string, 0, len(w.Phonology.VocalTypes))
		for _, t := range phonology.SortedTypes(phonology.TypeSet(w.Phonology.VocalTypes)) {
			types = append(types, string(t))
		}
		key := w.Phonology.SyllablePattern + "_" + strings.Join(types, ",")
		groups[key] = append(groups[key], w)
	}
	return groups
}
