package htmlexpr

import (
	"math/rand"
	"strings"
	"testing"
)

var testWords = []string{"lorem", "ipsum", "dolor", "sit", "amet"}

func TestGenerateLoremDeterministicForSameSeed(t *testing.T) {
	a := GenerateLorem(rand.New(rand.NewSource(42)), testWords, 20)
	b := GenerateLorem(rand.New(rand.NewSource(42)), testWords, 20)
	if a != b {
		t.Errorf("same seed produced different output:\n%q\n%q", a, b)
	}
}

func TestGenerateLoremCapitalizesFirstWord(t *testing.T) {
	out := GenerateLorem(rand.New(rand.NewSource(1)), testWords, 10)
	if out == "" {
		t.Fatal("GenerateLorem returned empty string")
	}
	first := strings.Fields(out)[0]
	if first[0] < 'A' || first[0] > 'Z' {
		t.Errorf("first word %q not capitalized", first)
	}
}

func TestGenerateLoremEndsWithSentenceTerminator(t *testing.T) {
	out := GenerateLorem(rand.New(rand.NewSource(7)), testWords, 15)
	if !strings.HasSuffix(out, ".") && !strings.HasSuffix(out, "?") && !strings.HasSuffix(out, "!") {
		t.Errorf("GenerateLorem output %q doesn't end with a sentence terminator", out)
	}
}

func TestPunctuateDistributesAllThreeTerminators(t *testing.T) {
	seen := map[string]bool{}
	for seed := int64(0); seed < 50; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		for _, w := range punctuate(rnd, []string{"a", "b", "c", "d"}) {
			last := w[len(w)-1:]
			if last == "." || last == "?" || last == "!" {
				seen[last] = true
			}
		}
	}
	for _, want := range []string{".", "?", "!"} {
		if !seen[want] {
			t.Errorf("punctuate never produced terminator %q across 50 seeds", want)
		}
	}
}

func TestPunctuateStripsTrailingCommaBeforeTerminator(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		out := punctuate(rnd, []string{"one", "two", "three", "four", "five", "six"})
		for _, w := range out {
			if strings.Contains(w, ",.") || strings.Contains(w, ",?") || strings.Contains(w, ",!") {
				t.Fatalf("seed %d: word %q has a comma immediately before its terminator", seed, w)
			}
		}
	}
}

func TestGenerateLoremZeroOrNoWordsIsEmpty(t *testing.T) {
	if got := GenerateLorem(rand.New(rand.NewSource(1)), testWords, 0); got != "" {
		t.Errorf("GenerateLorem(n=0) = %q, want empty", got)
	}
	if got := GenerateLorem(rand.New(rand.NewSource(1)), nil, 10); got != "" {
		t.Errorf("GenerateLorem(no words) = %q, want empty", got)
	}
}

func TestGenerateLoremWordCountMatchesRequest(t *testing.T) {
	out := GenerateLorem(rand.New(rand.NewSource(3)), testWords, 25)
	n := len(strings.Fields(out))
	if n != 25 {
		t.Errorf("word count = %d, want 25", n)
	}
}
