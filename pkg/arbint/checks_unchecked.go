//go:build arbint_unchecked

package arbint

// overflowChecks is off: plain operators wrap like native Go integers.
const overflowChecks = false
