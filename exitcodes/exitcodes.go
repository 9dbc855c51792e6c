// Package exitcodes defines the standard exit codes used by op-teststats.
package exitcodes

// Exit code constants used by op-teststats
// These constants define the exit codes that the application uses to indicate
// the outcome of the test session it reported on:
//
// * Success (0): The final run of the session has no failures
// * TestFailure (1): One or more tasks of the final run failed
// * RuntimeErr (2): The session could not be loaded or a report could not be written
const (
	Success     = 0 // No failures in the final run
	TestFailure = 1 // Failures in the final run
	RuntimeErr  = 2 // Runtime errors
)
