// Package woerter extracts structured word entries from woerter.net lookup pages.
package woerter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

const (
	formsMarkerClass = "wFlxs"
	formsSeparator   = "·"
	maxExamples      = 3
)

// ParseError is returned when the document cannot be read into a tree.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse woerter page: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Parser turns lookup pages into word entries. It holds no per-page state and
// is safe for concurrent use.
type Parser struct {
	log *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for degraded-section warnings.
func WithLogger(log *slog.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("parser", "woerter")
	return p
}

var defaultParser = New()

// Parse extracts a WordEntry from html using a parser without logging.
func Parse(html string) (domain.WordEntry, error) {
	return defaultParser.Parse(html)
}

// Parse extracts a WordEntry from html.
func (p *Parser) Parse(html string) (domain.WordEntry, error) {
	return p.ParseReader(strings.NewReader(html))
}

// ParseReader extracts a WordEntry from a page read from r. Missing sections
// degrade to defaults; only a failure to build the document is an error.
func (p *Parser) ParseReader(r io.Reader) (domain.WordEntry, error) {
	if r == nil {
		return domain.WordEntry{}, &ParseError{Err: errors.New("nil reader")}
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.WordEntry{}, &ParseError{Err: err}
	}

	root := doc.Selection
	grammar := parseGrammar(root)
	word := parseWord(root)
	forms := p.parseForms(root, word, grammar)

	return domain.WordEntry{
		Word:         word,
		Grammar:      grammar,
		Forms:        forms,
		Translations: parseTranslations(root),
		Examples:     parseExamples(root),
	}, nil
}

func parseGrammar(root *goquery.Selection) domain.Grammar {
	var tokens []string
	if spans := resolvePath(root, grammarPath); spans != nil {
		spans.Each(func(_ int, s *goquery.Selection) {
			if t := strings.ToLower(strings.TrimSpace(s.Text())); t != "" {
				tokens = append(tokens, t)
			}
		})
	}

	g := domain.Grammar{PartOfSpeech: domain.PartOfSpeechUnknown}

	for _, t := range tokens {
		if pos := domain.PartOfSpeech(t); isKnownPartOfSpeech(pos) {
			g.PartOfSpeech = pos
			break
		}
	}

	for _, t := range tokens {
		if t == "regular" {
			g.Regular = true
			break
		}
	}

	for _, t := range tokens {
		if gender := domain.Gender(t); gender.IsValid() {
			g.Gender = domain.GenderPtr(gender)
			break
		}
	}

	if g.PartOfSpeech == domain.PartOfSpeechNoun && g.Gender == nil {
		if el := resolvePath(root, genderPath); el != nil {
			article := strings.ToLower(strings.TrimSpace(el.First().Text()))
			if gender, ok := domain.GenderFromArticle(article); ok {
				g.Gender = domain.GenderPtr(gender)
			}
		}
	}

	return g
}

func isKnownPartOfSpeech(pos domain.PartOfSpeech) bool {
	for _, known := range domain.KnownPartsOfSpeech {
		if pos == known {
			return true
		}
	}
	return false
}

func parseWord(root *goquery.Selection) string {
	el := resolvePath(root, wordPath)
	if el == nil {
		return ""
	}
	return collapseSpaces(selectionText(el.First()))
}

func (p *Parser) parseForms(root *goquery.Selection, word string, g domain.Grammar) domain.WordForms {
	base := domain.BaseForms{Base: word}

	container := resolvePath(root, formsPath)
	if container == nil {
		return base
	}
	container = container.First()

	switch g.PartOfSpeech {
	case domain.PartOfSpeechVerb:
		if f, ok := p.verbForms(container, word); ok {
			return f
		}
		return nil
	case domain.PartOfSpeechNoun:
		if f, ok := p.nounForms(container, word, g.Gender); ok {
			return f
		}
		return nil
	case domain.PartOfSpeechAdjective:
		if f, ok := comparisonForms(container); ok {
			return f
		}
		return nil
	case domain.PartOfSpeechAdverb:
		if f, ok := comparisonForms(container); ok {
			return f
		}
		return base
	}
	return base
}

func splitForms(container *goquery.Selection) []string {
	raw := textUntilMarker(container.Get(0), formsMarkerClass)
	parts := strings.Split(raw, formsSeparator)
	for i := range parts {
		parts[i] = normalizeText(parts[i])
	}
	return parts
}

func (p *Parser) verbForms(container *goquery.Selection, word string) (domain.VerbForms, bool) {
	parts := splitForms(container)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		p.log.Warn("unexpected verb forms", slog.String("word", word), slog.Int("parts", len(parts)))
		return domain.VerbForms{}, false
	}
	return domain.VerbForms{
		Infinitive: word,
		Present3:   parts[0],
		Preterite:  parts[1],
		Perfect:    parts[2],
	}, true
}

func (p *Parser) nounForms(container *goquery.Selection, word string, gender *domain.Gender) (domain.NounForms, bool) {
	var parts []string
	for _, s := range splitForms(container) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) < 2 {
		p.log.Warn("not enough noun forms", slog.String("word", word), slog.Any("parts", parts))
		return domain.NounForms{}, false
	}

	var f domain.NounForms
	if gender != nil {
		f.NominativeSingular = &word
	}
	if parts[0] != "-" {
		f.GenitiveSingular = &parts[0]
	}
	f.NominativePlural = &parts[1]
	return f, true
}

func comparisonForms(container *goquery.Selection) (domain.ComparisonForms, bool) {
	qs := container.Find("q")
	if qs.Length() == 0 {
		return domain.ComparisonForms{}, false
	}
	at := func(i int) string {
		if i >= qs.Length() {
			return ""
		}
		return collapseSpaces(selectionText(qs.Eq(i)))
	}
	return domain.ComparisonForms{
		Positive:    at(0),
		Comparative: at(1),
		Superlative: at(2),
	}, true
}

func parseTranslations(root *goquery.Selection) domain.Translations {
	el := resolvePath(root, translationPath)
	if el == nil {
		return domain.Translations{}
	}
	return domain.Translations{RU: cleanTranslation(el.First().Text())}
}

func parseExamples(root *goquery.Selection) []string {
	examples := []string{}
	items := resolvePath(root, examplesPath)
	if items == nil {
		return examples
	}
	items.Slice(0, min(maxExamples, items.Length())).Each(func(_ int, li *goquery.Selection) {
		if text := exampleText(li.Get(0)); text != "" {
			examples = append(examples, text)
		}
	})
	return examples
}
