package services

import (
	"regexp"
	"strconv"

	"github.com/portalcentro/centrorag/internal/core/domain"
)

// rule pairs an intent pattern with the locale attribute it asks for.
// Each pattern captures the unit number in the named group "num".
type rule struct {
	pattern   *regexp.Regexp
	attribute domain.Attribute
}

// rules is evaluated in fixed priority order and the first match wins.
// Structured facts are strictly more reliable from the relational store than
// from generated text, so any recognisable structured intent preempts
// semantic retrieval. Keyword lists are Spanish, matching the corpus.
var rules = []rule{
	{regexp.MustCompile(`(?i)local\s*(?P<num>\d+)`), domain.AttributeNone},
	{regexp.MustCompile(`(?i)(monto|arriendo|precio)\s*(de\s*)?(local\s*)?(?P<num>\d+)`), domain.AttributeMonto},
	{regexp.MustCompile(`(?i)(superficie|metros\s+cuadrados)\s*(del\s*)?(local\s*)?(?P<num>\d+)`), domain.AttributeSuperficie},
	{regexp.MustCompile(`(?i)(estado)\s*(del\s*)?(local\s*)?(?P<num>\d+)`), domain.AttributeEstado},
}

// Classifier decides whether a query names a specific locale and attribute.
type Classifier struct{}

// NewClassifier creates a query classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify inspects the raw query text and yields a routing decision.
// Queries matching none of the structured patterns route to semantic
// retrieval unchanged.
func (c *Classifier) Classify(query string) domain.RoutingDecision {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(query)
		if m == nil {
			continue
		}

		num, err := strconv.Atoi(m[r.pattern.SubexpIndex("num")])
		if err != nil {
			continue
		}

		return domain.RoutingDecision{
			Kind:      domain.RouteStructured,
			Numero:    num,
			Attribute: r.attribute,
			Query:     query,
		}
	}

	return domain.RoutingDecision{
		Kind:  domain.RouteSemantic,
		Query: query,
	}
}
