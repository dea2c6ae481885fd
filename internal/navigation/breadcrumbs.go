package navigation

// BreadcrumbEntry is one step of the trail from root to the current page
type BreadcrumbEntry struct {
	Label     string
	Path      string
	IsCurrent bool
}

// Labels maps a path segment to its display label
type Labels map[string]string

// DefaultLabels returns the site's segment labels
func DefaultLabels() Labels {
	return Labels{
		"about":     "About",
		"products":  "Products",
		"contact":   "Contact",
		"login":     "Login",
		"dashboard": "Dashboard",
	}
}

// Label returns the label for segment, or the raw segment when none is known
func (l Labels) Label(segment string) string {
	if label, ok := l[segment]; ok && label != "" {
		return label
	}
	return segment
}

// BuildBreadcrumbs derives the trail for path: "Home" first, then one entry per
// non-empty segment with its cumulative path. Only the last entry is current.
func BuildBreadcrumbs(path string, labels Labels) []BreadcrumbEntry {
	segments := splitPath(path)
	trail := make([]BreadcrumbEntry, 0, len(segments)+1)
	trail = append(trail, BreadcrumbEntry{Label: "Home", Path: "/"})

	pathSoFar := ""
	for _, segment := range segments {
		pathSoFar += "/" + segment
		trail = append(trail, BreadcrumbEntry{
			Label: labels.Label(segment),
			Path:  pathSoFar,
		})
	}

	trail[len(trail)-1].IsCurrent = true
	return trail
}
