package tone

import "testing"

func FuzzAnalyze(f *testing.F) {
	f.Add("This is great! I love it!")
	f.Add("Maybe it could possibly work?")
	f.Add("")
	f.Add("!!! ??? ...")
	f.Add("yeah this stuff is kinda cool")
	f.Add("naïve façade ☃")

	f.Fuzz(func(t *testing.T, s string) {
		r := Analyze(s)

		if _, ok := labelNames[r.Label]; !ok {
			t.Errorf("invalid Label: %d", int(r.Label))
		}

		for cat, n := range r.Scores {
			if n <= 0 {
				t.Errorf("Scores[%q] = %d, want > 0", cat, n)
			}
		}

		// Same input, same verdict.
		again := Analyze(s)
		if again.Label != r.Label {
			t.Errorf("nondeterministic label: %v then %v", r.Label, again.Label)
		}
	})
}
