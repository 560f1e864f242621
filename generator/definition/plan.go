package definition

import "sort"

// Plan groups the definitions to generate by their primary namespace.
type Plan map[string][]*Definition

// Add appends definitions to the group of primary.
func (p Plan) Add(primary string, defs ...*Definition) {
	p[primary] = append(p[primary], defs...)
}

// Primaries returns the primary namespaces of the plan in a stable order.
func (p Plan) Primaries() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of definitions in the plan.
func (p Plan) Len() int {
	n := 0
	for _, defs := range p {
		n += len(defs)
	}
	return n
}
