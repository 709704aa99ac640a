package njson

// splitTopLevel splits a bracket-delimited fragment into its depth-zero
// elements. Commas and colons are equivalent separators, so an object
// fragment yields alternating key and value fragments; callers must
// treat an odd element count as a malformed object. The returned list
// comes from the session pool and should be handed back via recycle.
func (s *session) splitTopLevel(frag string) []string {
	elements := s.parts()
	if len(frag) <= 2 {
		return elements
	}
	body := frag[1 : len(frag)-1]
	depth := 0
	start := 0
	i := 0
	for i < len(body) {
		switch body[i] {
		case '"':
			i = scanQuoted(body, i, nil, s.hooks, true) + 1
			continue
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ',', ':':
			if depth == 0 {
				elements = append(elements, body[start:i])
				start = i + 1
			}
		}
		i++
	}
	elements = append(elements, body[start:])
	return elements
}
