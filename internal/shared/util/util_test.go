package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "resume.pdf", "resume.pdf", false},
		{"slashes replaced", "a/b\\c.pdf", "a_b_c.pdf", false},
		{"traversal rejected", "../etc/passwd", "", true},
		{"empty rejected", "   ", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SanitizeFileName(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestImageExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.png", "png"},
		{"photo.PNG", "png"},
		{"avatar.jpeg", "jpeg"},
		{"photo", "jpg"},
		{"photo.", "jpg"},
		{"weird.p/ng", "jpg"},
		{"", "jpg"},
	}
	for _, tc := range cases {
		if got := ImageExtension(tc.in); got != tc.want {
			t.Fatalf("ImageExtension(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHashClientKey(t *testing.T) {
	a := HashClientKey("198.51.100.4")
	b := HashClientKey("198.51.100.4")
	c := HashClientKey("198.51.100.5")

	if a != b {
		t.Fatalf("hash must be deterministic")
	}
	if a == c {
		t.Fatalf("distinct inputs must not collide")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == "198.51.100.4" {
		t.Fatalf("hash must not echo the input")
	}
}
