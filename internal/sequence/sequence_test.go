package sequence

import "testing"

func TestGenerate_IsPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100, 300} {
		perm, err := Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		if !IsPermutation(perm, n) {
			t.Errorf("Generate(%d) is not a permutation of 1..%d: %v", n, n, perm)
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, -300} {
		if _, err := Generate(n); err == nil {
			t.Errorf("Generate(%d): expected error", n)
		}
	}
}

func TestGenerate_IndependentCalls(t *testing.T) {
	// Two permutations of a large pool are practically never identical.
	// A collision here means the entropy source is broken.
	a, err := Generate(300)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(300)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("two independent permutations were identical")
	}
}

func TestIsPermutation_Rejects(t *testing.T) {
	tests := []struct {
		name string
		perm []int
		n    int
	}{
		{"wrong length", []int{1, 2}, 3},
		{"duplicate", []int{1, 2, 2}, 3},
		{"out of range high", []int{1, 2, 4}, 3},
		{"out of range low", []int{0, 1, 2}, 3},
		{"empty", nil, 3},
	}

	for _, tt := range tests {
		if IsPermutation(tt.perm, tt.n) {
			t.Errorf("%s: IsPermutation(%v, %d) = true, want false", tt.name, tt.perm, tt.n)
		}
	}
}
