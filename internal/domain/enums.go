package domain

// PartOfSpeech represents the grammatical category of a word as labelled
// on the dictionary page.
type PartOfSpeech string

const (
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechParticle     PartOfSpeech = "particle"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechNumeral      PartOfSpeech = "numeral"
	PartOfSpeechArticle      PartOfSpeech = "article"
	PartOfSpeechUnknown      PartOfSpeech = "unknown"
)

// KnownPartsOfSpeech lists every part of speech that can be recognised from
// page tokens. PartOfSpeechUnknown is deliberately absent.
var KnownPartsOfSpeech = []PartOfSpeech{
	PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
	PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechParticle,
	PartOfSpeechConjunction, PartOfSpeechInterjection, PartOfSpeechNumeral,
	PartOfSpeechArticle,
}

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechVerb, PartOfSpeechNoun, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechParticle,
		PartOfSpeechConjunction, PartOfSpeechInterjection, PartOfSpeechNumeral,
		PartOfSpeechArticle, PartOfSpeechUnknown:
		return true
	}
	return false
}

// Gender is the grammatical gender of a noun.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeuter:
		return true
	}
	return false
}

// Article returns the definite nominative article for the gender.
func (g Gender) Article() string {
	switch g {
	case GenderMasculine:
		return "der"
	case GenderNeuter:
		return "das"
	default:
		return "die"
	}
}

// GenderFromArticle maps a definite article to its gender.
func GenderFromArticle(article string) (Gender, bool) {
	switch article {
	case "der":
		return GenderMasculine, true
	case "die":
		return GenderFeminine, true
	case "das":
		return GenderNeuter, true
	}
	return "", false
}

// Speaker identifies one of the two dialog participants.
type Speaker string

const (
	SpeakerOne Speaker = "Speaker 1"
	SpeakerTwo Speaker = "Speaker 2"
)

func (s Speaker) String() string { return string(s) }

func (s Speaker) IsValid() bool {
	return s == SpeakerOne || s == SpeakerTwo
}

// EntryList is the list a stored word entry belongs to.
type EntryList string

const (
	EntryListDraft    EntryList = "draft"
	EntryListApproved EntryList = "approved"
)

func (l EntryList) String() string { return string(l) }

func (l EntryList) IsValid() bool {
	return l == EntryListDraft || l == EntryListApproved
}

// CounterType selects which generation counter a run increments.
type CounterType string

const (
	CounterMain CounterType = "main"
	CounterTest CounterType = "test"
)

func (c CounterType) String() string { return string(c) }

func (c CounterType) IsValid() bool {
	return c == CounterMain || c == CounterTest
}
