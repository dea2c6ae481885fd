package navigation

import "strings"

// MenuItem is one entry of the top navigation bar.
// Items with Action set are submitted as forms rather than followed as links.
type MenuItem struct {
	Label  string
	Path   string
	Active bool
	Action bool
}

// BuildMenu returns the navigation bar for currentPath.
// Dashboard is listed only for authenticated sessions, which also get Logout instead of Login.
func BuildMenu(currentPath string, authenticated bool) []MenuItem {
	current := NormalizePath(currentPath)

	items := []MenuItem{
		{Label: "Home", Path: "/"},
		{Label: "About", Path: "/about"},
		{Label: "Products", Path: "/products"},
		{Label: "Contact", Path: "/contact"},
	}
	if authenticated {
		items = append(items,
			MenuItem{Label: "Dashboard", Path: "/dashboard"},
			MenuItem{Label: "Logout", Path: "/logout", Action: true},
		)
	} else {
		items = append(items, MenuItem{Label: "Login", Path: "/login"})
	}

	for i := range items {
		if !items[i].Action {
			items[i].Active = isActive(items[i].Path, current)
		}
	}
	return items
}

// isActive matches the item path exactly or as a whole-segment prefix.
// The root item is only active on the root itself.
func isActive(itemPath, current string) bool {
	if itemPath == current {
		return true
	}
	if itemPath == "/" {
		return false
	}
	return strings.HasPrefix(current, itemPath+"/")
}
