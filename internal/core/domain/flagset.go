package domain

import "strings"

// FlagSet is an ordered sequence of toolchain flags. Order matters: later
// flags override earlier ones when passed to the same invocation, and no
// deduplication is performed here. Resolving duplicates is the toolchain's
// job.
type FlagSet []string

// Join renders the flags as a single space-separated string, the form
// expected by CMAKE_EXE_LINKER_FLAGS and make variable assignments.
func (f FlagSet) Join() string {
	return strings.Join(f, " ")
}
