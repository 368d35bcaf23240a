package accountsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pmendys/course-match/internal/domain"
)

// Recommender ranks catalog courses against a user's free-text
// interests. Each input is scored independently: an input matching a
// catalog title exactly borrows that course's features as the query,
// anything else is treated as a topic query over title, subject, and
// level. Scores are weighted by catalog popularity and the per-input
// candidate lists are interleaved round-robin so every interest gets
// represented near the top.
type Recommender struct {
	courses CourseRepository
}

// NewRecommender creates a new Recommender over the given catalog.
func NewRecommender(courses CourseRepository) *Recommender {
	return &Recommender{courses: courses}
}

type scored struct {
	course domain.Course
	score  float64
}

// Recommend returns up to n courses for the given inputs, best first.
func (r *Recommender) Recommend(ctx context.Context, inputs []string, n int) ([]domain.Course, error) {
	clean := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if t := strings.TrimSpace(in); t != "" {
			clean = append(clean, t)
		}
	}
	if len(clean) == 0 || n <= 0 {
		return nil, nil
	}

	catalog, err := r.courses.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	byTitle := make(map[string]domain.Course, len(catalog))
	for _, c := range catalog {
		byTitle[strings.ToLower(c.Title)] = c
	}

	// Titles the user typed verbatim are excluded from the results;
	// there is no point recommending an input back.
	seen := make(map[string]bool)
	var candidateLists [][]scored

	for _, input := range clean {
		query := input
		if c, ok := byTitle[strings.ToLower(input)]; ok {
			seen[c.Title] = true
			query = c.Title + " " + c.Subject + " " + c.Level
		}
		qTokens := tokenize(query)

		candidates := make([]scored, 0, len(catalog))
		for _, c := range catalog {
			score := overlap(qTokens, tokenize(c.Title+" "+c.Subject+" "+c.Level))
			if score == 0 {
				continue
			}
			score *= 0.7 + 0.3*c.RelevanceWeight
			candidates = append(candidates, scored{course: c, score: score})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})
		// Keep a few extra per input to survive overlaps during the merge.
		if len(candidates) > n+5 {
			candidates = candidates[:n+5]
		}
		candidateLists = append(candidateLists, candidates)
	}

	return interleave(candidateLists, seen, n), nil
}

// interleave merges the per-input candidate lists round-robin,
// skipping duplicates and excluded titles, until n courses are
// collected or the lists run dry.
func interleave(lists [][]scored, seen map[string]bool, n int) []domain.Course {
	maxLen := 0
	for _, l := range lists {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}

	results := make([]domain.Course, 0, n)
	for i := 0; i < maxLen && len(results) < n; i++ {
		for _, l := range lists {
			if len(results) >= n {
				break
			}
			if i >= len(l) {
				continue
			}
			c := l[i].course
			if seen[c.Title] {
				continue
			}
			seen[c.Title] = true
			results = append(results, c)
		}
	}
	return results
}

// tokenize lowercases and splits text into word tokens, dropping
// short stop-ish words.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(text)) {
		f = strings.Trim(f, ".,:;!?()&")
		if len(f) < 3 {
			continue
		}
		tokens[f] = true
	}
	return tokens
}

// overlap is the fraction of query tokens found in the document.
func overlap(query, doc map[string]bool) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for t := range query {
		if doc[t] {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}
