package keyboard

import "testing"

func TestInlineButtonsNPerRow(t *testing.T) {
	buttons := []InlineBtn{
		{Text: "a", Unique: "a"},
		{Text: "b", Unique: "b"},
		{Text: "c", Unique: "c"},
		{Text: "d", Unique: "d"},
		{Text: "e", Unique: "e"},
	}

	markup := InlineButtonsNPerRow(buttons, 2)
	if got := len(markup.InlineKeyboard); got != 3 {
		t.Fatalf("rows = %d, want 3", got)
	}
	if got := len(markup.InlineKeyboard[2]); got != 1 {
		t.Fatalf("last row = %d buttons, want 1", got)
	}

	// n <= 1 degrades to one button per row
	markup = InlineButtonsNPerRow(buttons, 0)
	if got := len(markup.InlineKeyboard); got != len(buttons) {
		t.Fatalf("rows = %d, want %d", got, len(buttons))
	}
}

func TestInlineButtonsRowsURLButton(t *testing.T) {
	markup := InlineButtonsRows([]InlineBtn{
		{Text: "link", URL: "https://example.org"},
		{Text: "data", Unique: "key"},
	})
	row := markup.InlineKeyboard[0]
	if row[0].URL != "https://example.org" {
		t.Fatalf("url button not preserved: %q", row[0].URL)
	}
	if row[1].Unique != "key" {
		t.Fatalf("data button unique not preserved: %q", row[1].Unique)
	}
}
