package domain

import "strings"

// FormsString renders the entry's forms as a single line used in prompts
// and CSV exports, e.g. "gehen; geht; ging; ist gegangen" or "der Tisch; Tische".
// Entries without forms render as the headword.
func FormsString(e WordEntry) string {
	switch f := e.Forms.(type) {
	case VerbForms:
		return strings.Join([]string{f.Infinitive, f.Present3, f.Preterite, f.Perfect}, "; ")
	case NounForms:
		return nounFormsString(f, e.Grammar.Gender)
	case ComparisonForms:
		parts := []string{f.Positive}
		if f.Comparative != "" {
			parts = append(parts, f.Comparative)
		}
		if f.Superlative != "" {
			parts = append(parts, f.Superlative)
		}
		return strings.Join(parts, "; ")
	case BaseForms:
		return f.Base
	}
	return e.Word
}

func nounFormsString(f NounForms, gender *Gender) string {
	article := "die" // plural
	if gender != nil {
		article = gender.Article()
	}

	switch {
	case gender == nil && f.NominativeSingular == nil && f.NominativePlural != nil:
		return article + " " + *f.NominativePlural
	case gender != nil && f.NominativeSingular != nil && f.NominativePlural == nil:
		return article + " " + *f.NominativeSingular
	}
	return article + " " + derefOr(f.NominativeSingular, "-") + "; " + derefOr(f.NominativePlural, "-")
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
