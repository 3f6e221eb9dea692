package patalg

// Difference returns a CompiledPattern matching exactly the paths a matches
// that b does not: A \ B = A ∩ ¬B.
func Difference(a, b *CompiledPattern) (*CompiledPattern, error) {
	notB, err := Complement(b)
	if err != nil {
		return nil, err
	}
	result, err := Intersect(a, notB)
	if err != nil {
		return nil, err
	}
	result.Source = "(" + a.Source + ")\\(" + b.Source + ")"
	return result, nil
}

// Contains reports whether every path b matches is also matched by a.
func Contains(a, b *CompiledPattern) (bool, error) {
	result, err := CheckContainment(a, b)
	if err != nil {
		return false, err
	}
	return result.Relationship == RelSuperset || result.Relationship == RelEqual, nil
}

// Equals reports whether a and b match exactly the same set of paths.
func Equals(a, b *CompiledPattern) (bool, error) {
	result, err := CheckContainment(a, b)
	if err != nil {
		return false, err
	}
	return result.Relationship == RelEqual, nil
}

// Overlaps reports whether a and b share at least one matching path.
func Overlaps(a, b *CompiledPattern) (bool, error) {
	result, err := CheckContainment(a, b)
	if err != nil {
		return false, err
	}
	return result.Relationship != RelDisjoint, nil
}
