package keywords

import "strings"

// Apply replaces every literal occurrence of each rule's reading and
// wrong-example variants with its canonical form. Rules run in list
// order: earlier rules can mask or interact with later ones, and no
// conflict resolution exists beyond that order. The pass is idempotent
// on an already-canonicalized text.
func Apply(text string, rules []Rule) string {
	for _, rule := range rules {
		if rule.Canonical == "" {
			continue
		}

		targets := make([]string, 0, len(rule.WrongExamples)+1)
		if rule.Reading != "" {
			targets = append(targets, rule.Reading)
		}
		for _, w := range rule.WrongExamples {
			if w = strings.TrimSpace(w); w != "" {
				targets = append(targets, w)
			}
		}

		for _, target := range targets {
			if target == rule.Canonical {
				continue
			}
			text = strings.ReplaceAll(text, target, rule.Canonical)
		}
	}

	return text
}
