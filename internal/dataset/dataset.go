package dataset

// Sample is an ordered sequence of signed 32-bit integers as stored in a
// dataset file. Values are not required to be unique or sorted.
type Sample []int32

// Defaults mirror the original dataset layout: 1000 values drawn from
// [0, 1000).
const (
	DefaultCount  = 1000
	DefaultDomain = 1000
)
