package vector

const (
	// growthFactor is the multiplier applied to the current capacity when
	// the vector must reallocate.
	growthFactor = 2

	// minCapacity is the capacity floor when growing a zero-capacity vector.
	minCapacity = 1
)
