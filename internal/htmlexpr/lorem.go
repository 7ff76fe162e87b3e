package htmlexpr

import (
	"math/rand"
	"strings"
)

// GenerateLorem produces n space-separated Latin words drawn from words,
// capitalizing the first word and breaking the rest into punctuated
// sentences, per spec §4.6. It never touches a global PRNG (spec §5
// "injectable randomness, no hidden global state"): callers supply rnd,
// typically seeded from Options so output is reproducible across calls
// with the same seed.
func GenerateLorem(rnd *rand.Rand, words []string, n int) string {
	if n <= 0 || len(words) == 0 {
		return ""
	}
	picked := make([]string, n)
	for i := 0; i < n; i++ {
		picked[i] = words[rnd.Intn(len(words))]
	}
	withSentences := punctuate(rnd, picked)
	withSentences[0] = strings.ToUpper(withSentences[0][:1]) + withSentences[0][1:]
	return strings.Join(withSentences, " ")
}

// punctuate breaks words into sentences of pseudo-random length (4-12
// words), comma-splicing an occasional mid-sentence pause, strips any
// trailing comma from the sentence's last word, and terminates each
// sentence via terminator (spec §4.6).
func punctuate(rnd *rand.Rand, words []string) []string {
	out := make([]string, len(words))
	copy(out, words)

	i := 0
	for i < len(out) {
		length := 4 + rnd.Intn(9)
		end := i + length
		if end > len(out) {
			end = len(out)
		}
		if end-i >= 6 {
			commaAt := i + 2 + rnd.Intn(end-i-3)
			out[commaAt] = out[commaAt] + ","
		}
		out[end-1] = strings.TrimSuffix(out[end-1], ",") + terminator(rnd)
		i = end
	}
	return out
}

// terminator picks a sentence-ending mark with `.` at probability ½, `?`
// at ¼, and `!` at ¼, realised as a random(4) value thresholded per spec
// §4.6 ("end with `.` (probability ½), `?` (¼), `!` (¼)").
func terminator(rnd *rand.Rand) string {
	switch v := rnd.Intn(4); {
	case v > 1:
		return "."
	case v > 0:
		return "?"
	default:
		return "!"
	}
}
