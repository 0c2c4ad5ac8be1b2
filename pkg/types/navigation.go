package types

import "github.com/peopledesk/peopledesk/pkg/authz"

// NavigationItem describes one sidebar entry. Visibility is decided by the
// same capability table the router consults.
type NavigationItem struct {
	Name     string
	Href     string
	View     authz.View
	Children []NavigationItem
}

func (n NavigationItem) HasAccess(svc *authz.Service, role authz.Role) bool {
	if n.View == "" {
		return true
	}
	return svc.Can(role, n.View)
}

// FilterNavigation prunes items (and their children) the role cannot reach.
func FilterNavigation(items []NavigationItem, svc *authz.Service, role authz.Role) []NavigationItem {
	visible := make([]NavigationItem, 0, len(items))
	for _, item := range items {
		if !item.HasAccess(svc, role) {
			continue
		}
		item.Children = FilterNavigation(item.Children, svc, role)
		visible = append(visible, item)
	}
	return visible
}
