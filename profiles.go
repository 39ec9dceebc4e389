package treebench

// Preset profiles for common benchmark shapes.

func SmallProfile() RunProfile {
	return RunProfile{
		Name:           "small",
		Size:           1_000,
		Iterations:     20,
		DeleteFraction: 0.25,
	}
}

func LargeProfile() RunProfile {
	return RunProfile{
		Name:           "large",
		Size:           1_000_000,
		Iterations:     5,
		DeleteFraction: 0.25,
	}
}

// DegenerateProfile inserts in sorted order, collapsing the unbalanced tree
// into a chain. Sized so the explicit-stack traversals get exercised at a
// depth that would overflow naive recursion elsewhere.
func DegenerateProfile() RunProfile {
	return RunProfile{
		Name:           "degenerate",
		Size:           200_000,
		Iterations:     3,
		DeleteFraction: 0.1,
		Sorted:         true,
	}
}
