package term

// View abstracts a contiguous range of Terms (e.g. "the aṅga plus all
// following non-empty terms up to the next pratyaya boundary"), exposing
// the same text-query surface as a single Term by delegating across the
// range. Load-bearing per SPEC_FULL.md §4.1: many rules condition on
// properties of sound sequences that cross Term boundaries.
type View struct {
	terms []*Term
}

// NewView wraps the given terms (in order) as a single logical unit.
func NewView(terms ...*Term) *View { return &View{terms: terms} }

// Text returns the concatenated surface text of every term in the view.
func (v *View) Text() string {
	s := ""
	for _, t := range v.terms {
		s += t.Text
	}
	return s
}

// Terms returns the underlying terms.
func (v *View) Terms() []*Term { return v.terms }

// Adi returns the initial sound of the view's concatenated text.
func (v *View) Adi() string {
	for _, t := range v.terms {
		if t.Text != "" {
			return t.Adi()
		}
	}
	return ""
}

// Antya returns the final sound of the view's concatenated text.
func (v *View) Antya() string {
	for i := len(v.terms) - 1; i >= 0; i-- {
		if v.terms[i].Text != "" {
			return v.terms[i].Antya()
		}
	}
	return ""
}

// NumVowels returns the total vowel count across the view.
func (v *View) NumVowels() int {
	n := 0
	for _, t := range v.terms {
		n += t.NumVowels()
	}
	return n
}

// EndsWith reports whether the view's concatenated text ends with suffix.
func (v *View) EndsWith(suffix string) bool {
	text := v.Text()
	if len(text) < len(suffix) {
		return false
	}
	return text[len(text)-len(suffix):] == suffix
}

// HasTag reports whether any term in the view carries tag.
func (v *View) HasTag(tag Tag) bool {
	for _, t := range v.terms {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}
