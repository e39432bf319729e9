package reportcard

import "testing"

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Asha", "Asha"},
		{"  Asha  ", "Asha"},
		{"\x00As\x07ha\xff", "Asha"},
		{"Renée", "Renée"},
		{"Li\x1b Wei", "Li Wei"},
		{"tab\tinside", "tabinside"},
		{"\u0085next line", "next line"},
	}
	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
