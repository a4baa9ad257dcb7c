package navigation

import "github.com/agnivade/levenshtein"

// FindSubstate returns the container in tree whose tag matches tag.
func FindSubstate(tree ContainerState, tag Tag) (ContainerState, bool) {
	var found ContainerState
	Walk(tree, func(c ContainerState) bool {
		if c.ContainerTag().Is(tag) {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}

// Walk visits tree in pre-order: the node, its tabs' navigations, then its
// modal. Visiting stops when fn returns false.
func Walk(tree ContainerState, fn func(ContainerState) bool) {
	walk(tree, fn)
}

func walk(c ContainerState, fn func(ContainerState) bool) bool {
	if c == nil {
		return true
	}
	if !fn(c) {
		return false
	}
	if tabs, ok := c.(TabsState); ok {
		for _, t := range tabs.Tabs {
			if !walk(t.Navigation, fn) {
				return false
			}
		}
	}
	return walk(c.ModalState(), fn)
}

// ContainerIDs lists every container id in tree in pre-order.
func ContainerIDs(tree ContainerState) []string {
	var out []string
	Walk(tree, func(c ContainerState) bool {
		out = append(out, c.ContainerTag().UniqueID())
		return true
	})
	return out
}

// Suggest returns the container id in tree closest to id, for diagnostics when
// an event addresses a container that is not in the tree. It returns false
// when id exists or the tree is empty.
func Suggest(tree ContainerState, id string) (string, bool) {
	best, bestDist := "", -1
	for _, candidate := range ContainerIDs(tree) {
		if candidate == id {
			return "", false
		}
		d := levenshtein.ComputeDistance(id, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, bestDist >= 0
}

// Routes reports whether some node in tree would consume ev.
func Routes(tree ContainerState, ev Event) bool {
	_, ok := FindSubstate(tree, ev.TargetContainer())
	return ok
}
