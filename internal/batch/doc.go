// Package batch schedules probes in fixed-size concurrent groups.
//
// Groups run strictly one after another. Within a group every probe runs in
// its own goroutine and the group is joined before any of its results are
// emitted, which bounds the number of in-flight requests to the batch size.
package batch
