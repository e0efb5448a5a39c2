package adapter

import "strings"

// depthCap bounds the depth weighting so deep scope stacks cannot overflow.
const depthCap = 16

// ScopeMatcher scores a scope selector against a scope name. Higher scores
// mean a more specific match; zero means the selector does not apply.
type ScopeMatcher interface {
	ScoreSelector(scope, selector string) int
}

// TextMateMatcher implements TextMate selector matching:
//   - "a, b" and "a | b" are alternatives, the best one wins;
//   - "a b" matches when a and b match scope elements in that order;
//   - an atom matches an element equal to it or starting with atom + ".";
//   - "a - b" matches a unless b also matches.
//
// Each matched atom contributes its component count weighted by the depth
// of the element it matched, so longer atoms and deeper elements score
// higher.
type TextMateMatcher struct{}

// NewScopeMatcher returns the default ScopeMatcher.
func NewScopeMatcher() *TextMateMatcher {
	return &TextMateMatcher{}
}

// ScoreSelector returns the score of selector against the space separated
// scope name (outermost element first).
func (TextMateMatcher) ScoreSelector(scope, selector string) int {
	elements := strings.Fields(scope)
	if len(elements) == 0 {
		return 0
	}

	best := 0

	alternatives := strings.FieldsFunc(selector, func(r rune) bool {
		return r == ',' || r == '|'
	})
	for _, alt := range alternatives {
		if score := scoreAlternative(elements, alt); score > best {
			best = score
		}
	}

	return best
}

func scoreAlternative(elements []string, alternative string) int {
	include, excludes := splitExclusions(alternative)

	score := 0

	switch {
	case len(include) > 0:
		score = scorePath(elements, include)
	case len(excludes) > 0:
		// "- comment" selects everything that is not a comment.
		score = 1
	}

	if score == 0 {
		return 0
	}

	for _, exclude := range excludes {
		if scorePath(elements, exclude) > 0 {
			return 0
		}
	}

	return score
}

// splitExclusions breaks "a b - c - d e" into the include path [a b] and the
// exclusion paths [[c] [d e]]. Parentheses are treated as whitespace.
func splitExclusions(alternative string) ([]string, [][]string) {
	alternative = strings.NewReplacer("(", " ", ")", " ").Replace(alternative)

	var (
		include  []string
		excludes [][]string
		current  *[]string
	)

	current = &include

	for _, token := range strings.Fields(alternative) {
		if strings.HasPrefix(token, "-") {
			excludes = append(excludes, nil)
			current = &excludes[len(excludes)-1]

			token = strings.TrimLeft(token, "-")
			if token == "" {
				continue
			}
		}

		*current = append(*current, token)
	}

	return include, excludes
}

// scorePath matches atoms right to left against elements, each atom taking
// the deepest element still available that it matches.
func scorePath(elements []string, atoms []string) int {
	score := 0
	ei := len(elements) - 1

	for ai := len(atoms) - 1; ai >= 0; ai-- {
		atom := strings.TrimSuffix(atoms[ai], ".*")

		for ei >= 0 && !atomMatches(elements[ei], atom) {
			ei--
		}

		if ei < 0 {
			return 0
		}

		score += (strings.Count(atom, ".") + 1) << (3 * min(ei, depthCap))
		ei--
	}

	return score
}

func atomMatches(element, atom string) bool {
	atom = strings.TrimSuffix(atom, ".*")
	if atom == "" || atom == "*" {
		return atom == "*"
	}

	return element == atom || strings.HasPrefix(element, atom+".")
}
