package model

import "errors"

// Dataset validation errors returned by Dataset.Validate.
var (
	// ErrMissingSystem is returned when a per-system mapping lacks one of Systems().
	ErrMissingSystem = errors.New("dataset is missing a system")

	// ErrMissingBucket is returned when a per-bucket mapping lacks one of Buckets().
	ErrMissingBucket = errors.New("dataset is missing a join bucket")

	// ErrWinsExceedTotal is returned when the systems together win more
	// queries than the workload contains.
	ErrWinsExceedTotal = errors.New("winning queries exceed total queries")

	// ErrBucketWinsExceedTotal is returned when the wins inside one bucket
	// exceed the number of queries in that bucket.
	ErrBucketWinsExceedTotal = errors.New("bucket wins exceed bucket total")

	// ErrBucketTotalsMismatch is returned when the bucket totals do not add
	// up to the workload size.
	ErrBucketTotalsMismatch = errors.New("bucket totals do not sum to total queries")
)
