package slice

// SubsetStrings returns a boolean indicating whether every element of 'a' is also present in 'b'.
func SubsetStrings(a, b []string) bool {
	for _, e := range a {
		if !ContainsString(b, e) {
			return false
		}
	}

	return true
}
