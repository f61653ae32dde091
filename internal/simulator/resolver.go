package simulator

// DependencyFunc returns the direct prerequisites of an option
type DependencyFunc func(id string) []string

// Prerequisites returns the transitive prerequisite closure of id, excluding
// id itself. Each option appears once even when the graph has cycles or
// diamonds; the order is depth-first discovery order.
func Prerequisites(id string, deps DependencyFunc) []string {
	var acc []string
	var walk func(cur string)
	walk = func(cur string) {
		for _, dep := range deps(cur) {
			if dep == id || contains(acc, dep) {
				continue
			}
			acc = append(acc, dep)
			walk(dep)
		}
	}
	walk(id)
	return acc
}

// DirectDependents returns the options of selected whose own prerequisite
// list contains id. Only one level is scanned: dependents of dependents are
// left in place.
func DirectDependents(id string, selected []string, deps DependencyFunc) []string {
	var out []string
	for _, candidate := range selected {
		if candidate == id {
			continue
		}
		if contains(deps(candidate), id) {
			out = append(out, candidate)
		}
	}
	return out
}

// toggle flips id in selected. Selecting adds the prerequisite closure with
// the option; deselecting removes the option together with its direct
// dependents. The input slice is never modified.
func toggle(selected []string, id string, deps DependencyFunc) []string {
	if contains(selected, id) {
		removed := append(DirectDependents(id, selected, deps), id)
		return without(selected, removed)
	}
	return include(selected, id, deps)
}

// include adds id and its closure unless id is already selected
func include(selected []string, id string, deps DependencyFunc) []string {
	if contains(selected, id) {
		return selected
	}
	out := append([]string(nil), selected...)
	for _, dep := range Prerequisites(id, deps) {
		if !contains(out, dep) {
			out = append(out, dep)
		}
	}
	return append(out, id)
}

// flip adds or removes id with no dependency handling
func flip(selected []string, id string) []string {
	if contains(selected, id) {
		return without(selected, []string{id})
	}
	return append(append([]string(nil), selected...), id)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func without(list []string, removed []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if !contains(removed, v) {
			out = append(out, v)
		}
	}
	return out
}
