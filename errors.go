package suffixtree

// TreeError is an error type for the suffixtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvariantViolation signals a corrupted construction state. It is never
// expected in correct operation; construction is aborted and no tree is
// returned.
const ErrInvariantViolation = TreeError("suffix tree construction: invariant violated")

// ErrNotGeneralized is flagged if a two-text query is issued for a tree which
// has been constructed from a single text.
const ErrNotGeneralized = TreeError("suffix tree does not contain a separator; not a generalized tree")

// ErrIllegalSentinel is flagged whenever a separator or terminator character
// occurs in one of the texts of a generalized tree, or if both are identical.
const ErrIllegalSentinel = TreeError("illegal sentinel character")

// ErrInvalidConfig signals an invalid builder configuration.
const ErrInvalidConfig = TreeError("invalid suffix tree configuration")

// ErrTextTooLong is flagged if a text exceeds the configured maximum length.
const ErrTextTooLong = TreeError("text exceeds configured maximum length")

// ErrInvalidTree is flagged by Check for structural inconsistencies.
const ErrInvalidTree = TreeError("invalid suffix tree")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")
