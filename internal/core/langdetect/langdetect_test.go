package langdetect

import (
	"strings"
	"testing"

	perr "shuardict/internal/platform/errors"
)

func TestDetectEmptyText(t *testing.T) {
	for _, s := range []string{"", "   ", "\n\t"} {
		if _, err := Detect(s); !perr.IsValidation(err) {
			t.Fatalf("Detect(%q) err = %v, want validation error", s, err)
		}
	}
}

func TestDetectShuar(t *testing.T) {
	res, err := Detect("shuar entsa yawá tsaa")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Language != Shuar {
		t.Fatalf("language = %q, want shuar (%+v)", res.Language, res)
	}
	if res.Confidence <= 0.5 || res.Confidence > 1.0 {
		t.Fatalf("confidence = %v, want in (0.5, 1.0]", res.Confidence)
	}
	if !strings.Contains(res.Explanation, "Shuar") {
		t.Fatalf("explanation missing language: %q", res.Explanation)
	}
}

func TestDetectSpanish(t *testing.T) {
	res, err := Detect("el perro grande de la casa")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Language != Spanish {
		t.Fatalf("language = %q, want spanish (%+v)", res.Language, res)
	}
	if res.Features.HasSpanishO != 1.0 {
		t.Fatalf("has_spanish_o = %v, want 1.0", res.Features.HasSpanishO)
	}
}

func TestLaryngealizedVowelsForceShuar(t *testing.T) {
	res, err := Detect("wëe nakï")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Language != Shuar {
		t.Fatalf("laryngealized text classified as %q", res.Language)
	}
	if res.Features.ShuarLaryngealizedVowels == 0 {
		t.Fatalf("laryngealized ratio = 0, want > 0")
	}
	if !strings.Contains(res.Explanation, "laryngealized") {
		t.Fatalf("explanation missing laryngealized note: %q", res.Explanation)
	}
}

func TestDetectNoSignal(t *testing.T) {
	res, err := Detect("!!! ???")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Language != Spanish {
		t.Fatalf("no-signal fallback = %q, want spanish", res.Language)
	}
	if res.Confidence != 0.5 {
		t.Fatalf("no-signal confidence = %v, want 0.5", res.Confidence)
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		confidence float64
		want       Tier
	}{
		{0.95, TierHigh},
		{0.81, TierHigh},
		{0.8, TierMedium},
		{0.6, TierMedium},
		{0.5, TierLow},
		{0.2, TierLow},
	}
	for _, tc := range cases {
		if got := tierFor(tc.confidence); got != tc.want {
			t.Fatalf("tierFor(%v) = %q, want %q", tc.confidence, got, tc.want)
		}
	}
}

func TestFeatureRatiosBounded(t *testing.T) {
	res, err := Detect("entsa chicham para la casa tsáanin")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	f := res.Features
	ratios := map[string]float64{
		"shuar_nasal_vowels":   f.ShuarNasalVowels,
		"shuar_laryngealized":  f.ShuarLaryngealizedVowels,
		"shuar_common_words":   f.ShuarCommonWords,
		"spanish_common_words": f.SpanishCommonWords,
		"shuar_suffixes":       f.ShuarSuffixes,
		"spanish_suffixes":     f.SpanishSuffixes,
		"consonant_density":    f.ConsonantDensity,
		"vowel_diversity":      f.VowelDiversity,
		"vowel_system_shuar":   f.VowelSystemShuar,
		"vowel_system_spanish": f.VowelSystemSpanish,
	}
	for name, v := range ratios {
		if v < 0 || v > 1 {
			t.Fatalf("%s = %v, out of [0,1]", name, v)
		}
	}
}

func TestCommonWordRatio(t *testing.T) {
	words := []string{"el", "shuar", "casa"}
	if r := commonWordRatio(words, spanishCommonWords); r < 0.6 || r > 0.7 {
		t.Fatalf("spanish common ratio = %v, want 2/3", r)
	}
	if r := commonWordRatio(nil, spanishCommonWords); r != 0.0 {
		t.Fatalf("empty words ratio = %v, want 0", r)
	}
}

func TestSuffixRatio(t *testing.T) {
	// one Shuar suffix hit, matched at most once per word
	if r := suffixRatio([]string{"takuni", "perro"}, shuarSuffixes); r != 0.5 {
		t.Fatalf("suffix ratio = %v, want 0.5", r)
	}
	if r := suffixRatio([]string{"nación", "maldad"}, spanishSuffixes); r != 1.0 {
		t.Fatalf("spanish suffix ratio = %v, want 1.0", r)
	}
}

func TestVowelSystemScores(t *testing.T) {
	// all four Shuar base vowels plus a laryngealized mark, no 'o'
	if s := vowelSystemShuar("aeiuä"); s != 1.0 {
		t.Fatalf("shuar vowel fitness = %v, want 1.0 (clamped)", s)
	}
	// 'o' penalizes the Shuar fit
	withO := vowelSystemShuar("aeiuo")
	withoutO := vowelSystemShuar("aeiu")
	if withO >= withoutO {
		t.Fatalf("'o' did not penalize shuar fit: %v >= %v", withO, withoutO)
	}
	// 'ü' is the one laryngealized mark inside the Spanish inventory,
	// so it is the only one that can penalize the Spanish fit
	if s := vowelSystemSpanish("aeiouü"); s >= vowelSystemSpanish("aeiou") {
		t.Fatalf("laryngealized mark did not penalize spanish fit")
	}
	// a lone laryngealized vowel drives the raw score negative, clamped to 0
	if s := vowelSystemSpanish("ü"); s != 0.0 {
		t.Fatalf("spanish vowel fitness = %v, want 0.0 (clamped)", s)
	}
}
