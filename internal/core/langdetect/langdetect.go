// Package langdetect classifies text as Shuar or Spanish using weighted
// phonological, lexical, and morphological feature scores.
package langdetect

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"shuardict/internal/core/phonology"
	perr "shuardict/internal/platform/errors"
)

// Language is a supported dictionary language
type Language string

const (
	Shuar   Language = "shuar"
	Spanish Language = "spanish"
)

// Tier buckets a confidence score
type Tier string

const (
	TierHigh   Tier = "high"   // > 0.8
	TierMedium Tier = "medium" // 0.5 - 0.8
	TierLow    Tier = "low"    // < 0.5
)

// Features holds the per-signal scores computed for one input text.
// All fields are ratios or bounded fitness values except AvgWordLength.
type Features struct {
	ShuarNasalVowels         float64 `json:"shuar_nasal_vowels"`
	ShuarLaryngealizedVowels float64 `json:"shuar_laryngealized_vowels"`
	ShuarDigraphs            float64 `json:"shuar_digraphs"`
	SpanishDigraphs          float64 `json:"spanish_digraphs"`
	HasSpanishO              float64 `json:"has_spanish_o"`
	VowelSystemShuar         float64 `json:"vowel_system_shuar"`
	VowelSystemSpanish       float64 `json:"vowel_system_spanish"`
	ShuarCommonWords         float64 `json:"shuar_common_words"`
	SpanishCommonWords       float64 `json:"spanish_common_words"`
	ShuarSuffixes            float64 `json:"shuar_suffixes"`
	SpanishSuffixes          float64 `json:"spanish_suffixes"`
	ConsonantDensity         float64 `json:"consonant_density"`
	VowelDiversity           float64 `json:"vowel_diversity"`
	AvgWordLength            float64 `json:"avg_word_length"`
	SyllableComplexity       float64 `json:"syllable_complexity"`
}

// Result is the full classification output
type Result struct {
	Language    Language `json:"detected_language"`
	Confidence  float64  `json:"confidence"`
	Tier        Tier     `json:"confidence_level"`
	Features    Features `json:"features_detected"`
	Explanation string   `json:"explanation"`
}

var (
	shuarVowels         = runeSet("aeiuáéíúäëïü")
	shuarNasalVowels    = runeSet("áéíú")
	shuarLaryngealized  = runeSet("äëïü")
	spanishVowels       = runeSet("aeiouáéíóúü")
	shuarBaseVowels     = runeSet("aeiu")
	spanishBaseVowels   = runeSet("aeiou")

	shuarDigraphs   = []string{"ch", "sh", "ts"}
	spanishDigraphs = []string{"ch", "ll", "rr"}

	shuarCommonWords = wordSet(
		"yawa", "jea", "shuar", "arutam", "núka", "apa", "entsa",
		"tsaa", "saant", "kunkuk", "chichim", "wampish", "nuna",
		"mama", "tau", "inia", "uunt", "yä", "takuni", "tsáanin",
	)
	spanishCommonWords = wordSet(
		"el", "la", "de", "que", "y", "a", "en", "un", "es", "se",
		"no", "te", "lo", "le", "da", "su", "por", "son", "con", "para",
		"casa", "perro", "agua", "bueno", "grande", "persona", "sol",
	)

	shuarSuffixes   = []string{"ni", "ai", "ka", "ma", "ta", "nu", "tu", "chi"}
	spanishSuffixes = []string{"ción", "dad", "mente", "oso", "osa", "ado", "ada", "ero", "era"}

	clusterRe = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]{2,}`)
)

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Detect classifies text as Shuar or Spanish. Returns a validation error
// when text is empty after trimming. When no signal triggers at all the
// result falls back to Spanish at neutral 0.5 confidence.
func Detect(text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, perr.Validationf("text cannot be empty")
	}

	t := phonology.Fold(text)
	feats := analyzeFeatures(t)

	shuarScore := scoreShuar(feats)
	spanishScore := scoreSpanish(feats)

	var lang Language
	var confidence float64
	total := shuarScore + spanishScore
	switch {
	case total <= 0:
		// nothing triggered, e.g. pure punctuation
		lang, confidence = Spanish, 0.5
	case shuarScore > spanishScore:
		lang, confidence = Shuar, shuarScore/total
	default:
		lang, confidence = Spanish, spanishScore/total
	}

	return Result{
		Language:    lang,
		Confidence:  confidence,
		Tier:        tierFor(confidence),
		Features:    feats,
		Explanation: explain(lang, feats, shuarScore, spanishScore),
	}, nil
}

func analyzeFeatures(t string) Features {
	words := strings.Fields(t)
	totalChars := len([]rune(strings.ReplaceAll(t, " ", "")))

	return Features{
		ShuarNasalVowels:         charRatio(t, shuarNasalVowels, totalChars),
		ShuarLaryngealizedVowels: charRatio(t, shuarLaryngealized, totalChars),
		ShuarDigraphs:            digraphRatio(t, shuarDigraphs, len(words)),
		SpanishDigraphs:          digraphRatio(t, spanishDigraphs, len(words)),
		HasSpanishO:              boolScore(strings.ContainsRune(t, 'o')),
		VowelSystemShuar:         vowelSystemShuar(t),
		VowelSystemSpanish:       vowelSystemSpanish(t),
		ShuarCommonWords:         commonWordRatio(words, shuarCommonWords),
		SpanishCommonWords:       commonWordRatio(words, spanishCommonWords),
		ShuarSuffixes:            suffixRatio(words, shuarSuffixes),
		SpanishSuffixes:          suffixRatio(words, spanishSuffixes),
		ConsonantDensity:         consonantDensity(t),
		VowelDiversity:           vowelDiversity(t),
		AvgWordLength:            avgWordLength(words),
		SyllableComplexity:       syllableComplexity(words),
	}
}

func boolScore(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

func charRatio(t string, set map[rune]bool, totalChars int) float64 {
	if totalChars == 0 {
		return 0.0
	}
	count := 0
	for _, r := range t {
		if set[r] {
			count++
		}
	}
	return float64(count) / float64(totalChars)
}

func digraphRatio(t string, dgs []string, totalWords int) float64 {
	if totalWords == 0 {
		return 0.0
	}
	count := 0
	for _, d := range dgs {
		count += strings.Count(t, d)
	}
	return float64(count) / float64(totalWords)
}

// vowelSystemShuar scores how well the text's vowel inventory fits Shuar:
// coverage of the four base vowels, bonuses for nasal and laryngealized
// marks, a 0.5 penalty for the foreign vowel 'o'
func vowelSystemShuar(t string) float64 {
	found := vowelsFound(t, shuarVowels)
	score := float64(countIn(found, shuarBaseVowels)) / 4.0
	if anyIn(found, shuarNasalVowels) {
		score += 0.3
	}
	if anyIn(found, shuarLaryngealized) {
		score += 0.4
	}
	if strings.ContainsRune(t, 'o') {
		score -= 0.5
	}
	return clamp01(score)
}

// vowelSystemSpanish mirrors vowelSystemShuar for the five Spanish vowels,
// rewarding 'o' and penalizing laryngealized marks
func vowelSystemSpanish(t string) float64 {
	found := vowelsFound(t, spanishVowels)
	score := float64(countIn(found, spanishBaseVowels)) / 5.0
	if found['o'] {
		score += 0.3
	}
	if anyIn(found, shuarLaryngealized) {
		score -= 0.6
	}
	return clamp01(score)
}

func vowelsFound(t string, inventory map[rune]bool) map[rune]bool {
	found := make(map[rune]bool)
	for _, r := range t {
		if inventory[r] {
			found[r] = true
		}
	}
	return found
}

func countIn(found, set map[rune]bool) int {
	n := 0
	for r := range found {
		if set[r] {
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

func anyIn(found, set map[rune]bool) bool {
	for r := range found {
		if set[r] {
			return true
		}
	}
	return false
}

func commonWordRatio(words []string, common map[string]bool) float64 {
	if len(words) == 0 {
		return 0.0
	}
	matches := 0
	for _, w := range words {
		if common[w] {
			matches++
		}
	}
	return float64(matches) / float64(len(words))
}

func suffixRatio(words []string, suffixes []string) float64 {
	if len(words) == 0 {
		return 0.0
	}
	matches := 0
	for _, w := range words {
		for _, s := range suffixes {
			if strings.HasSuffix(w, s) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(words))
}

func consonantDensity(t string) float64 {
	consonants, letters := 0, 0
	for _, r := range t {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if !shuarVowels[r] {
			consonants++
		}
	}
	if letters == 0 {
		return 0.0
	}
	return float64(consonants) / float64(letters)
}

// vowelDiversity counts distinct vowels against the larger Spanish inventory
func vowelDiversity(t string) float64 {
	found := make(map[rune]bool)
	for _, r := range t {
		if shuarVowels[r] || spanishVowels[r] {
			found[r] = true
		}
	}
	return float64(len(found)) / float64(len(spanishVowels))
}

func avgWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0.0
	}
	total := 0
	for _, w := range words {
		total += len([]rune(w))
	}
	return float64(total) / float64(len(words))
}

// syllableComplexity averages the per-word ratio of ASCII consonant
// clusters to word length
func syllableComplexity(words []string) float64 {
	if len(words) == 0 {
		return 0.0
	}
	total := 0.0
	for _, w := range words {
		if n := len([]rune(w)); n > 0 {
			total += float64(len(clusterRe.FindAllString(w, -1))) / float64(n)
		}
	}
	return total / float64(len(words))
}

func scoreShuar(f Features) float64 {
	score := f.ShuarNasalVowels * 3.0
	score += f.ShuarLaryngealizedVowels * 4.0
	score += f.VowelSystemShuar * 2.0
	score += f.ShuarCommonWords * 3.0
	score += f.ShuarSuffixes * 2.0
	score += f.ShuarDigraphs * 1.5
	// agglutination makes Shuar words run long
	if f.AvgWordLength > 4 {
		score += 1.0
	}
	return score
}

func scoreSpanish(f Features) float64 {
	score := f.HasSpanishO * 3.0
	score += f.VowelSystemSpanish * 2.0
	score += f.SpanishCommonWords * 3.0
	score += f.SpanishSuffixes * 2.0
	score += f.SpanishDigraphs * 1.5
	score -= f.ShuarLaryngealizedVowels * 2.0
	score -= f.ShuarNasalVowels * 1.0
	if score < 0 {
		return 0.0
	}
	return score
}

func tierFor(confidence float64) Tier {
	switch {
	case confidence > 0.8:
		return TierHigh
	case confidence > 0.5:
		return TierMedium
	default:
		return TierLow
	}
}

func explain(lang Language, f Features, shuarScore, spanishScore float64) string {
	var reasons []string
	if lang == Shuar {
		if f.ShuarLaryngealizedVowels > 0 {
			reasons = append(reasons, "Contains laryngealized vowels (ä, ë, ï, ü) unique to Shuar")
		}
		if f.ShuarNasalVowels > 0 {
			reasons = append(reasons, "Contains nasal vowels (á, é, í, ú) typical of Shuar")
		}
		if f.ShuarCommonWords > 0 {
			reasons = append(reasons, "Contains common Shuar words")
		}
		if f.HasSpanishO == 0 {
			reasons = append(reasons, "Lacks the vowel 'o' which is absent in Shuar")
		}
	} else {
		if f.HasSpanishO > 0 {
			reasons = append(reasons, "Contains the vowel 'o' which is present in Spanish but not Shuar")
		}
		if f.SpanishCommonWords > 0 {
			reasons = append(reasons, "Contains common Spanish words")
		}
		if f.SpanishSuffixes > 0 {
			reasons = append(reasons, "Contains Spanish morphological patterns")
		}
	}

	name := "Spanish"
	if lang == Shuar {
		name = "Shuar"
	}
	base := fmt.Sprintf("Detected as %s (Shuar score: %.2f, Spanish score: %.2f)", name, shuarScore, spanishScore)
	if len(reasons) == 0 {
		return base + ". Based on general linguistic patterns."
	}
	return base + ". " + strings.Join(reasons, "; ") + "."
}
