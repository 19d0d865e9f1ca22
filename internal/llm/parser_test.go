package llm

import "testing"

func TestCleanJSONStripsCodeFence(t *testing.T) {
	in := "```json\n{\"allergies\": [\"peanuts\"]}\n```"
	want := `{"allergies": ["peanuts"]}`

	if got := CleanJSON(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanJSONStripsBareFence(t *testing.T) {
	in := "```\n{\"a\": 1}\n```"
	want := `{"a": 1}`

	if got := CleanJSON(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanJSONExtractsEmbeddedObject(t *testing.T) {
	in := "Here is your profile:\n{\"allergies\": []}\nHope that helps!"
	want := `{"allergies": []}`

	if got := CleanJSON(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanJSONLeavesValidJSONAlone(t *testing.T) {
	in := `{"a": "contains { braces } inside"}`
	if got := CleanJSON(in); got != in {
		t.Fatalf("valid JSON must pass through untouched, got %q", got)
	}
}

func TestDecodeDocument(t *testing.T) {
	doc, err := DecodeDocument("```json\n{\"household\": 2}\n```")
	if err != nil {
		t.Fatal(err)
	}
	if doc["household"] != float64(2) {
		t.Fatalf("unexpected document: %v", doc)
	}
}

func TestDecodeDocumentRejectsProse(t *testing.T) {
	if _, err := DecodeDocument("I cannot produce a profile for that input."); err == nil {
		t.Fatalf("expected a parse failure")
	}
}

func TestDecodeDocumentRejectsEmpty(t *testing.T) {
	if _, err := DecodeDocument("   "); err == nil {
		t.Fatalf("expected a parse failure for empty text")
	}
}
