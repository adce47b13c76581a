package huffcodec

import "testing"

func TestAnalyzeFrequency(t *testing.T) {
	freq, distinct := analyzeFrequency([]byte("abracadabra"))
	if distinct != 5 {
		t.Fatalf("distinct = %d, want 5", distinct)
	}
	want := map[byte]int{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	for sym, count := range want {
		if freq[sym] != count {
			t.Fatalf("freq[%q] = %d, want %d", sym, freq[sym], count)
		}
	}
}

func TestBumpDegenerateFromStart(t *testing.T) {
	var freq [alphabetSize]int
	freq[0] = 7
	bumpDegenerate(&freq)
	if freq[1] != 1 {
		t.Fatalf("freq[1] = %d, want 1 (bump goes to i+1 when i == 0)", freq[1])
	}
	if freq[0] != 7 {
		t.Fatalf("freq[0] = %d, want unchanged at 7", freq[0])
	}
}

func TestBumpDegenerateFromMiddle(t *testing.T) {
	var freq [alphabetSize]int
	freq[200] = 3
	bumpDegenerate(&freq)
	if freq[199] != 1 {
		t.Fatalf("freq[199] = %d, want 1 (bump goes to i-1)", freq[199])
	}
}
