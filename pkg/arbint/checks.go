//go:build !arbint_unchecked

package arbint

// overflowChecks makes plain operators panic on overflow.
const overflowChecks = true
