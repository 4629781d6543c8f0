package routes

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Keys returns the method-qualified patterns of every route in the group and
// its children, each joined under parentPrefix.
func (g Group) Keys(parentPrefix string) []string {
	prefix := parentPrefix + g.Prefix
	keys := make([]string, 0, len(g.Routes))
	for _, route := range g.Routes {
		keys = append(keys, route.Key(prefix))
	}
	for _, child := range g.Children {
		keys = append(keys, child.Keys(prefix)...)
	}
	return keys
}
