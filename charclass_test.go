package jiebago

import "testing"

func TestRegularize(t *testing.T) {
	cases := []struct {
		in, want rune
	}{
		{0x3000, ' '},  // ideographic space
		{'Ａ', 'a'},     // full-width upper goes half-width, then lower
		{'＋', '+'},     // full-width punctuation
		{'Z', 'z'},     // ASCII upper
		{'a', 'a'},     // already regular
		{'中', '中'},     // CJK untouched
		{0xFF5E, '~'},  // last full-width printable
		{0xFF5F, 0xFF5F}, // just past the range
	}
	for _, c := range cases {
		if got := regularize(c.in); got != c.want {
			t.Fatalf("regularize(%U) = %U, want %U", c.in, got, c.want)
		}
	}
}

func TestRegularizeIdempotent(t *testing.T) {
	for c := rune(0); c <= 0xFFFF; c++ {
		once := regularize(c)
		if twice := regularize(once); twice != once {
			t.Fatalf("regularize not idempotent at %U: %U then %U", c, once, twice)
		}
	}
}

func TestCharClasses(t *testing.T) {
	if !isCJK('中') || isCJK('a') || isCJK(0x4DFF) || !isCJK(0x4E00) || !isCJK(0x9FA5) || isCJK(0x9FA6) {
		t.Fatalf("isCJK range wrong")
	}
	for _, c := range "+#&._-" {
		if !isConnector(c) {
			t.Fatalf("connector %q not recognized", c)
		}
	}
	if isConnector('*') {
		t.Fatalf("* is not a connector")
	}
	for _, c := range "中a9#" {
		if !isCC(c) {
			t.Fatalf("isCC(%q) should be true", c)
		}
	}
	for _, c := range " ，。!" {
		if isCC(c) {
			t.Fatalf("isCC(%q) should be false", c)
		}
	}
}
