// Package vyakarana is a computational implementation of Pāṇinian Sanskrit
// grammar. Given a semantic request — a verbal root plus inflectional
// arguments, a nominal stem plus declensional arguments, or a derivational
// request — the packages under this module produce every well-formed
// surface form the classical grammar sanctions, together with the ordered
// trace of rules that derived each one.
//
// See SPEC_FULL.md for the full component breakdown and DESIGN.md for the
// grounding of each package. The entry points live in package driver.
package vyakarana
