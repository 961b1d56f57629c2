package persona

import "sort"

// RankedCategory is one interest category with its supporting citations.
type RankedCategory struct {
	Category  string
	Citations []string
}

// RankedCount is one counter key with its count.
type RankedCount struct {
	Name  string
	Count int
}

// TopCategories returns up to n categories ordered by citation count
// descending. The sort is stable over first-seen order, so ties keep the
// order categories were first encountered in.
func TopCategories(c *Citations, n int) []RankedCategory {
	cats := c.Categories()
	out := make([]RankedCategory, 0, len(cats))
	for _, cat := range cats {
		out = append(out, RankedCategory{Category: cat, Citations: c.Get(cat)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Citations) > len(out[j].Citations)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopCounts returns up to n keys ordered by count descending, ties in
// first-seen order.
func TopCounts(c *Counter, n int) []RankedCount {
	keys := c.Keys()
	out := make([]RankedCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, RankedCount{Name: k, Count: c.Get(k)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
