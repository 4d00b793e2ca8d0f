package render

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/spicery/seqlist/pkg/seqlist"
)

func TestPrintListJSON(t *testing.T) {
	var buf bytes.Buffer
	PrintListJSON(seqlist.New("a", "b"), "", &buf, &Options{})

	expected := "{\"items\":[\"a\",\"b\"]}\n"
	if buf.String() != expected {
		t.Errorf("Expected JSON output %q, got %q", expected, buf.String())
	}
}

func TestPrintListJSONReadOnly(t *testing.T) {
	var buf bytes.Buffer
	PrintListJSON(seqlist.NewReadOnly("a"), "", &buf, &Options{})

	expected := "{\"items\":[\"a\"],\"readOnly\":true}\n"
	if buf.String() != expected {
		t.Errorf("Expected JSON output %q, got %q", expected, buf.String())
	}
}

func TestPrintListYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	PrintListYAML(seqlist.NewReadOnly("a", "b"), "", &buf, &Options{Indent: 2})

	var doc Doc
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Failed to decode YAML output: %v", err)
	}
	if !slices.Equal(doc.Items, []string{"a", "b"}) {
		t.Errorf("Expected items [a b], got %v", doc.Items)
	}
	if !doc.ReadOnly {
		t.Errorf("Expected readOnly to round-trip as true")
	}
}

func TestPrintListLines(t *testing.T) {
	var buf bytes.Buffer
	PrintListLines(seqlist.New("a", "b"), "", &buf, nil)

	expected := "a\nb\n"
	if buf.String() != expected {
		t.Errorf("Expected lines output %q, got %q", expected, buf.String())
	}
}

func TestPrintListAsciiTree(t *testing.T) {
	var buf bytes.Buffer
	PrintListAsciiTree(seqlist.New("alpha", "beta"), "", &buf, &Options{IncludeReadOnly: true})

	output := buf.String()
	if !strings.Contains(output, "list (2 items)") {
		t.Errorf("Expected tree output to contain the count label, got %q", output)
	}
	if !strings.Contains(output, "0: alpha") || !strings.Contains(output, "1: beta") {
		t.Errorf("Expected tree output to contain the indexed items, got %q", output)
	}
	if !strings.Contains(output, "readOnly: false") {
		t.Errorf("Expected tree output to contain the read-only property, got %q", output)
	}
}

func TestPrintListDOT(t *testing.T) {
	var buf bytes.Buffer
	PrintListDOT(seqlist.New("a", "b"), "", &buf, nil)

	output := buf.String()
	if !strings.Contains(output, "digraph G {") {
		t.Errorf("Expected DOT output to open a digraph, got %q", output)
	}
	if !strings.Contains(output, "\"list\" -> \"item_0\";") {
		t.Errorf("Expected edge from head to first item, got %q", output)
	}
	if !strings.Contains(output, "\"item_0\" -> \"item_1\";") {
		t.Errorf("Expected edge between consecutive items, got %q", output)
	}
}

func TestPrintListDOTEscapesQuotes(t *testing.T) {
	var buf bytes.Buffer
	PrintListDOT(seqlist.New(`say "hi"`), "", &buf, nil)

	if !strings.Contains(buf.String(), `say \"hi\"`) {
		t.Errorf("Expected quotes to be escaped, got %q", buf.String())
	}
}

func TestReadDocJSON(t *testing.T) {
	doc, err := ReadDocJSON(strings.NewReader(`{"items": ["a", "b"], "readOnly": true}`))
	if err != nil {
		t.Fatalf("ReadDocJSON failed: %v", err)
	}
	if !slices.Equal(doc.Items, []string{"a", "b"}) {
		t.Errorf("Expected items [a b], got %v", doc.Items)
	}

	list := doc.ToList()
	if !list.ReadOnly() {
		t.Errorf("Expected the built list to be locked")
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 items, got %d", list.Len())
	}
}

func TestReadDocYAML(t *testing.T) {
	doc, err := ReadDocYAML(strings.NewReader("items:\n  - a\n  - b\n"))
	if err != nil {
		t.Fatalf("ReadDocYAML failed: %v", err)
	}
	if !slices.Equal(doc.Items, []string{"a", "b"}) {
		t.Errorf("Expected items [a b], got %v", doc.Items)
	}
	if doc.ReadOnly {
		t.Errorf("Expected readOnly to default to false")
	}

	if doc.ToList().ReadOnly() {
		t.Errorf("Expected the built list to be mutable")
	}
}

func TestDocForSnapshot(t *testing.T) {
	list := seqlist.New("a")
	doc := DocFor(list)

	doc.Items[0] = "changed"
	got, err := list.At(0)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if got != "a" {
		t.Errorf("Expected the document to hold a snapshot, list now has %q", got)
	}
}

func TestTrimItem(t *testing.T) {
	if got := TrimItem("abcdef", 4); got != "abc…" {
		t.Errorf("Expected trimmed item 'abc…', got %q", got)
	}
	if got := TrimItem("abcdef", 0); got != "abcdef" {
		t.Errorf("Expected trimming disabled at 0, got %q", got)
	}
	if got := TrimItem("ab", 4); got != "ab" {
		t.Errorf("Expected short items to pass through, got %q", got)
	}
	if got := TrimItem("abcdef", 1); got != "a" {
		t.Errorf("Expected hard truncation at length 1, got %q", got)
	}
}
