// Package executor dispatches resolved build jobs to a runner through a
// fixed-size worker pool. Jobs are independent by construction, so there is
// no scheduling beyond draining the list; failures are isolated per job and
// never cancel or affect the others.
package executor
