// Package lakarakarya records the lakāra (tense/mood) and prayoga (voice)
// of a tinanta derivation, and decides parasmaipada/ātmanepada when the
// caller leaves it unspecified. Grounded on spec.md §4.4 item 3 and
// _examples/original_source/vidyut-prakriya/src/la_karya.rs's pada-decision
// helpers.
package lakarakarya

import "github.com/vidyapeetha/vyakarana/prakriya"

var rulePadaDecision = prakriya.Sutra("1.3.78")

// padaByDhatu is a small lookup of root-specific pada restriction (P.1.3.72
// through 1.3.93 name the general classes; most roots are lexically
// parasmaipadin, ātmanepadin, or ubhayapadin per the dhātupāṭha's own
// pada-marking convention, which the trimmed built-in dhātu table omits).
var padaByDhatu = map[string]string{
	"BU":  "parasmaipada",
	"kf":  "ubhayapada",
	"pac": "ubhayapada",
	"ad":  "parasmaipada",
	"gam": "parasmaipada",
}

// Run tags the derivation with its lakāra and prayoga, and resolves pada:
// if pada is "" the caller wants it decided; ubhayapadin roots default to
// parasmaipada unless requested otherwise via an explicit non-empty pada.
func Run(p *prakriya.Prakriya, dhatuCode, lakara, prayoga, pada string) string {
	p.SetTag("lakara", lakara)
	p.SetTag("prayoga", prayoga)

	if pada == "" {
		p.Op(rulePadaDecision, func(pr *prakriya.Prakriya) {
			restriction := padaByDhatu[dhatuCode]
			switch restriction {
			case "atmanepada":
				pada = "atmanepada"
			default:
				pada = "parasmaipada"
			}
		})
	}
	p.SetTag("pada", pada)
	return pada
}
