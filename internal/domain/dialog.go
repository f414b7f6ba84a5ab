package domain

import "fmt"

// DialogLine is one turn of a two-speaker dialog.
type DialogLine struct {
	ID      int     `json:"id"`
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Format renders the line the way it is sent to speech synthesis.
func (l DialogLine) Format() string {
	return fmt.Sprintf("%s: %s", l.Speaker, l.Text)
}

// DialogData is a generated dialog. Turn order is slice order; IDs are
// informational only.
type DialogData struct {
	Dialog         []DialogLine   `json:"dialog"`
	WordFormsUsage map[string]int `json:"word_forms_usage,omitempty"`
}

// UsedWordForms counts the word forms that appear at least once.
func (d DialogData) UsedWordForms() int {
	n := 0
	for _, c := range d.WordFormsUsage {
		if c > 0 {
			n++
		}
	}
	return n
}
