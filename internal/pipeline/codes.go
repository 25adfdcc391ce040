package pipeline

import "fmt"

// CodeRegistry hands out product codes for one extraction run: it synthesizes
// codes for rows that ship without one and suffixes duplicates until every
// code is unique across the run. Each run gets its own registry.
type CodeRegistry struct {
	counters map[string]int
	seen     map[string]struct{}
}

func NewCodeRegistry() *CodeRegistry {
	return &CodeRegistry{
		counters: map[string]int{},
		seen:     map[string]struct{}{},
	}
}

// Generate returns the next zero-padded sequential code for prefix,
// e.g. "NC-0001".
func (r *CodeRegistry) Generate(prefix string) string {
	r.counters[prefix]++
	return fmt.Sprintf("%s-%04d", prefix, r.counters[prefix])
}

// Claim returns code unchanged when unseen, otherwise the first "-1", "-2",
// ... suffixed variant that is still free. The returned code is recorded as
// taken.
func (r *CodeRegistry) Claim(code string) string {
	unique := code
	for suffix := 1; ; suffix++ {
		if _, taken := r.seen[unique]; !taken {
			break
		}
		unique = fmt.Sprintf("%s-%d", code, suffix)
	}
	r.seen[unique] = struct{}{}
	return unique
}
