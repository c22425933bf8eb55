package bigint

import "fmt"

// assertNormalized panics if any of the values is not in normalized form. It
// is a no-op unless the package is built with the bigintdebug tag.
func assertNormalized(values ...*BigInt) {
	if !debug {
		return
	}
	for _, v := range values {
		if !v.TestInvariant() {
			panic(fmt.Sprintf("bigint: value %v has trailing zero digits", v))
		}
	}
}
