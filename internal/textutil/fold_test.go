package textutil

import "testing"

func TestEqualFold(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"apple", "Apple", true},
		{"APPLE", "apple", true},
		{"  Apple  ", "apple", true},
		{"apple", "pear", false},
		{"", "", true},
		{"Dragonfruit", "dragonFRUIT", true},
	}
	for _, tc := range cases {
		if got := EqualFold(tc.a, tc.b); got != tc.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFoldTrims(t *testing.T) {
	if got := Fold("  Banana "); got != Fold("banana") {
		t.Errorf("Fold did not trim: got %q", got)
	}
}
