package toon

import "testing"

func TestScanClassifiesLineShapes(t *testing.T) {
	input := "name: Alice\n" +
		"age:\n" +
		"  first: 1\n" +
		"tags:\n" +
		"  - go\n" +
		"  - toon\n" +
		"rows:\n" +
		"  @,id,name\n" +
		"  - 1,Bob\n"
	lines := scan(input)

	want := []lineKind{
		lineKeyValue,
		lineKeyOnly,
		lineKeyValue,
		lineKeyOnly,
		lineListItem,
		lineListItem,
		lineKeyOnly,
		lineTabularHeader,
		lineListItem,
	}
	if len(lines) != len(want) {
		t.Fatalf("scan() produced %d lines, want %d", len(lines), len(want))
	}
	for i, l := range lines {
		if l.kind != want[i] {
			t.Errorf("line %d (%q): kind = %v, want %v", i+1, l.raw, l.kind, want[i])
		}
	}
}

func TestScanStripsTrailingBlankLines(t *testing.T) {
	lines := scan("a: 1\n\n\n")
	if len(lines) != 1 {
		t.Fatalf("scan() produced %d lines, want 1 (trailing blanks stripped)", len(lines))
	}
}

func TestScanComputesIndent(t *testing.T) {
	lines := scan("a:\n    b: 1\n")
	if lines[1].indent != 4 {
		t.Errorf("indent = %d, want 4", lines[1].indent)
	}
}

func TestScanDetectsTabInIndentation(t *testing.T) {
	lines := scan("a:\n\tb: 1\n")
	if !lines[1].hasTab {
		t.Error("hasTab = false, want true for tab-indented line")
	}
}

func TestScanQuotedKeyWithColon(t *testing.T) {
	lines := scan(`"a: b": 1`)
	if lines[0].kind != lineKeyValue {
		t.Fatalf("kind = %v, want lineKeyValue", lines[0].kind)
	}
	if !lines[0].keyQuoted {
		t.Error("keyQuoted = false, want true")
	}
	if lines[0].key != "a: b" {
		t.Errorf("key = %q, want %q", lines[0].key, "a: b")
	}
}

func TestScanBareListItemOpener(t *testing.T) {
	lines := scan("-\n  a: 1\n")
	if lines[0].kind != lineListItem || lines[0].value != "" {
		t.Errorf("line 0 = %+v, want bare list item opener", lines[0])
	}
}

func TestScanScalarRoot(t *testing.T) {
	lines := scan("42")
	if lines[0].kind != lineScalar || lines[0].value != "42" {
		t.Errorf("line 0 = %+v, want scalar 42", lines[0])
	}
}

func TestSplitDelimitedQuoteAware(t *testing.T) {
	got := splitDelimited(`1,"a,b",3`, ',')
	want := []string{"1", `"a,b"`, "3"}
	if len(got) != len(want) {
		t.Fatalf("splitDelimited() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitDelimitedTrailingDelimiterYieldsEmptyField(t *testing.T) {
	got := splitDelimited("a,b,", ',')
	want := []string{"a", "b", ""}
	if len(got) != len(want) {
		t.Fatalf("splitDelimited() = %v, want %v", got, want)
	}
	if got[2] != "" {
		t.Errorf("trailing field = %q, want empty", got[2])
	}
}

func TestScanQuotedHandlesEscapedQuote(t *testing.T) {
	end, closed := scanQuoted(`"a\"b"`, 0)
	if !closed {
		t.Fatal("scanQuoted() closed = false, want true")
	}
	if end != len(`"a\"b"`) {
		t.Errorf("scanQuoted() end = %d, want %d", end, len(`"a\"b"`))
	}
}
