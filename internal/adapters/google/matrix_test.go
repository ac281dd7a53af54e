package google

import "testing"

func TestParseProtoDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1234s", 1234},
		{"0s", 0},
		{"90.5s", 90},
		{"", 0},
		{"garbage", 0},
	}

	for _, tc := range cases {
		if got := parseProtoDuration(tc.in); got != tc.want {
			t.Errorf("parseProtoDuration(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
