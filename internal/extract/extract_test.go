package extract

import "testing"

func TestDecodeRun(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Engineer", "Engineer"},
		{"encoded space", "Senior%20Engineer", "Senior Engineer"},
		{"encoded symbol", "C%2B%2B", "C++"},
		{"malformed escape kept", "100%z", "100%z"},
		{"trailing percent kept", "50%", "50%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := decodeRun(tc.in); got != tc.want {
				t.Fatalf("decodeRun(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractRejectsNonPDF(t *testing.T) {
	_, err := Extract([]byte("this is not a pdf"))
	if err == nil {
		t.Fatalf("expected error for non-PDF bytes")
	}
}

func TestExtractRejectsEmptyInput(t *testing.T) {
	_, err := Extract(nil)
	if err == nil {
		t.Fatalf("expected error for empty input")
	}
}
