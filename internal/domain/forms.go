package domain

import (
	"bytes"
	"encoding/json"
)

// WordForms is the closed set of inflection shapes a WordEntry can carry.
// The concrete type is selected by the entry's part of speech:
//
//	verb                -> VerbForms
//	noun                -> NounForms
//	adjective / adverb  -> ComparisonForms (or BaseForms without a comparison table)
//	anything else       -> BaseForms
//
// BaseForms is also used for any part of speech when the page has no forms block.
type WordForms interface {
	wordForms()
}

// VerbForms are the principal parts of a verb.
type VerbForms struct {
	Infinitive string `json:"infinitive"`
	Present3   string `json:"present3"`
	Preterite  string `json:"preterite"`
	Perfect    string `json:"perfect"`
}

// NounForms are the dictionary forms of a noun. NominativeSingular is set
// only when the gender is known; GenitiveSingular is nil for "-".
type NounForms struct {
	NominativeSingular *string `json:"nominativeSingular"`
	GenitiveSingular   *string `json:"genitiveSingular"`
	NominativePlural   *string `json:"nominativePlural"`
}

// ComparisonForms are the degrees of comparison of an adjective or adverb.
type ComparisonForms struct {
	Positive    string `json:"positive"`
	Comparative string `json:"comparative"`
	Superlative string `json:"superlative"`
}

// BaseForms carries only the headword.
type BaseForms struct {
	Base string `json:"base"`
}

func (VerbForms) wordForms()       {}
func (NounForms) wordForms()       {}
func (ComparisonForms) wordForms() {}
func (BaseForms) wordForms()       {}

// FormsAllowed reports whether forms is a legal variant for pos.
// A nil forms value is always allowed.
func FormsAllowed(pos PartOfSpeech, forms WordForms) bool {
	switch forms.(type) {
	case nil, BaseForms:
		return true
	case VerbForms:
		return pos == PartOfSpeechVerb
	case NounForms:
		return pos == PartOfSpeechNoun
	case ComparisonForms:
		return pos == PartOfSpeechAdjective || pos == PartOfSpeechAdverb
	}
	return false
}

// DecodeForms decodes a JSON forms object into the variant dictated by pos.
// JSON null or an empty payload yields nil. An object carrying "base" is
// always decoded as BaseForms.
func DecodeForms(pos PartOfSpeech, raw []byte) (WordForms, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if _, ok := fields["base"]; ok {
		var f BaseForms
		err := json.Unmarshal(raw, &f)
		return f, err
	}

	switch pos {
	case PartOfSpeechVerb:
		var f VerbForms
		err := json.Unmarshal(raw, &f)
		return f, err
	case PartOfSpeechNoun:
		var f NounForms
		err := json.Unmarshal(raw, &f)
		return f, err
	case PartOfSpeechAdjective, PartOfSpeechAdverb:
		var f ComparisonForms
		err := json.Unmarshal(raw, &f)
		return f, err
	}

	return BaseForms{}, nil
}
