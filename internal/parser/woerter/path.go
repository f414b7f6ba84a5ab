package woerter

import "github.com/PuerkitoBio/goquery"

// step is one segment of a structural path. A child step matches direct
// children of the current selection; a deep step matches any descendant.
type step struct {
	selector string
	deep     bool
}

func child(sel string) step { return step{selector: sel} }
func deep(sel string) step  { return step{selector: sel, deep: true} }

// path is an ordered list of steps resolved one at a time.
type path []step

func (p path) then(steps ...step) path {
	out := make(path, 0, len(p)+len(steps))
	out = append(out, p...)
	return append(out, steps...)
}

// resolvePath applies steps in order starting from root. It returns nil as
// soon as a step matches nothing.
func resolvePath(root *goquery.Selection, p path) *goquery.Selection {
	cur := root
	for _, s := range p {
		if s.deep {
			cur = cur.Find(s.selector)
		} else {
			cur = cur.ChildrenFiltered(s.selector)
		}
		if cur.Length() == 0 {
			return nil
		}
	}
	return cur
}

// Structural paths of a woerter.net lookup page.
var (
	parentPath = path{
		deep("body"),
		child("article"),
		child("div:nth-child(1)"),
	}

	definitionPath = parentPath.then(
		child("div.rAbschnitt"),
		child("div"),
		child("section:first-child"),
		child("div.rAufZu"),
	)

	grammarPath = definitionPath.then(
		deep("span.rInf"),
		child("span[title]"),
	)

	headerPath = definitionPath.then(
		child("div#wStckInf"),
		child("div#wStckKrz"),
		child("div.rCntr.rClear"),
	)

	genderPath = headerPath.then(deep(`span[title^="gender"]`))
	wordPath   = headerPath.then(deep("q"))

	formsPath = parentPath.then(
		child("div.rInfo"),
		child("section:nth-child(2)"),
		child("div.rAufZu"),
	)

	translationPath = parentPath.then(
		child("div.rInfo"),
		child("section:first-child"),
		child("div.rAufZu"),
		child("dl:nth-of-type(2)"),
		deep(`dd[lang="ru"]`),
	)

	examplesPath = parentPath.then(
		child("div.rAbschnitt"),
		child("div"),
		child("section:last-child"),
		child("div.rAufZu"),
		child("ul.rLst"),
		child("li"),
	)
)
