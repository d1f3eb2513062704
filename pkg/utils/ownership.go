package utils

// OwnsResource reports whether identity equals one of the non-empty candidates.
// An empty identity never owns anything.
func OwnsResource(identity string, candidates ...string) bool {
	if identity == "" {
		return false
	}

	for _, candidate := range candidates {
		if candidate != "" && candidate == identity {
			return true
		}
	}

	return false
}
