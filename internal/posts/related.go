package posts

// DefaultRelatedLimit bounds Related when the caller passes a non-positive limit.
const DefaultRelatedLimit = 3

// Related returns up to limit posts from all that share the category of
// current or at least one of its tags. current itself is excluded by slug.
// Results keep the order of all.
func Related(all []Post, current Post, limit int) []Post {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	category := CategoryKey(current.Category)
	tags := make(map[string]struct{}, len(current.Tags))
	for _, tag := range current.Tags {
		tags[tag] = struct{}{}
	}

	out := make([]Post, 0, min(limit, len(all)))
	for _, candidate := range all {
		if len(out) == limit {
			break
		}
		if candidate.Slug == current.Slug {
			continue
		}
		if CategoryKey(candidate.Category) == category || sharesTag(candidate.Tags, tags) {
			out = append(out, candidate)
		}
	}
	return out
}

func sharesTag(candidate []string, tags map[string]struct{}) bool {
	for _, tag := range candidate {
		if _, ok := tags[tag]; ok {
			return true
		}
	}
	return false
}
