package update

import "testing"

func TestFormatUserName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Sam", "Sam"},
		{"Sam Okafor", "Sam Okafor"},
		{"Ada king Lovelace", "Ada K. Lovelace"},
		{"Jean Luc Marie Picard", "Jean Picard"},
	}
	for _, tc := range cases {
		if got := FormatUserName(tc.in); got != tc.want {
			t.Fatalf("FormatUserName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatClockSec(t *testing.T) {
	if got := formatClockSec(-5); got != "00:00" {
		t.Fatalf("negative seconds: %q", got)
	}
	if got := formatClockSec(90); got != "01:30" {
		t.Fatalf("90s: %q", got)
	}
	if got := formatClockSec(3661); got != "01:01:01" {
		t.Fatalf("3661s: %q", got)
	}
}
