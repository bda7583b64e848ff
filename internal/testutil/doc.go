// Package testutil provides test helpers for the tstamp project.
//
// This package includes:
//   - Error assertion helpers for checking error codes
//   - Generic equality and must-style helpers
//
// Command-level tests drive the cobra root directly (see cmd/tstamp).
//
// # Example Usage
//
//	func TestResolve(t *testing.T) {
//	    _, err := timestamp.Resolve(timestamp.InputMillis, -1500, nil)
//	    testutil.AssertError(t, err, alerr.ErrOutOfRange)
//
//	    got, err := timestamp.Resolve(timestamp.InputSeconds, 0, nil)
//	    testutil.Must(t, err)
//	    testutil.AssertEqual(t, got, timestamp.Epoch)
//	}
package testutil
