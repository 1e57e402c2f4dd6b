package model

import "fmt"

// System identifies one of the compared query optimizers.
type System string

const (
	// SystemCOMPASS is the sketch-merging optimizer under evaluation.
	SystemCOMPASS System = "COMPASS"

	// SystemPostgreSQL is the baseline optimizer.
	SystemPostgreSQL System = "PostgreSQL"
)

// String returns the display name of the system.
func (s System) String() string {
	return string(s)
}

// Bucket is a join-count range used to stratify the workload.
type Bucket string

const (
	// Bucket4To9 holds queries with 4 to 9 joins.
	Bucket4To9 Bucket = "4-9"

	// Bucket10To19 holds queries with 10 to 19 joins.
	Bucket10To19 Bucket = "10-19"

	// Bucket20To28 holds queries with 20 to 28 joins.
	Bucket20To28 Bucket = "20-28"
)

// String returns the bucket range, e.g. "4-9".
func (b Bucket) String() string {
	return string(b)
}

// Label returns the bucket as shown on chart axes and in reports, e.g. "4-9 Joins".
func (b Bucket) Label() string {
	return fmt.Sprintf("%s Joins", b)
}

// Systems returns the compared systems in presentation order.
// Callers must iterate this slice rather than a map so output is stable.
func Systems() []System {
	return []System{SystemCOMPASS, SystemPostgreSQL}
}

// Buckets returns the join-count buckets in ascending complexity order.
func Buckets() []Bucket {
	return []Bucket{Bucket4To9, Bucket10To19, Bucket20To28}
}

// BucketWins records how many queries of one bucket each system won.
type BucketWins struct {
	// Wins maps each system to the number of queries it won in the bucket.
	Wins map[System]int `json:"wins"`

	// Total is the number of queries in the bucket.
	Total int `json:"total_queries"`
}

// Metrics holds representative plan figures for one system in one bucket.
type Metrics struct {
	// Cardinality is the representative estimated row count.
	Cardinality float64 `json:"cardinality"`

	// ExecutionTimeMS is the representative execution time in milliseconds.
	ExecutionTimeMS float64 `json:"execution_time_ms"`
}

// Dataset is the embedded benchmark comparison between COMPASS and
// PostgreSQL on the Join Order Benchmark.
//
// All values are literal constants fixed by NewDataset. Nothing in this
// module mutates a Dataset after construction, so a single instance can be
// read from any number of renderers.
type Dataset struct {
	// Benchmark is the workload name printed in report headers.
	Benchmark string `json:"benchmark"`

	// TotalQueries is the size of the workload.
	TotalQueries int `json:"total_queries"`

	// WinningQueries maps each system to the number of queries it won.
	WinningQueries map[System]int `json:"winning_queries"`

	// JoinDistribution breaks the wins down per join bucket.
	JoinDistribution map[Bucket]BucketWins `json:"join_distribution"`

	// PerformanceMetrics holds cardinality and execution time per bucket and system.
	PerformanceMetrics map[Bucket]map[System]Metrics `json:"performance_metrics"`

	// L1Distances holds the normalized L1 distance between estimated and
	// true cardinalities per bucket and system.
	L1Distances map[Bucket]map[System]float64 `json:"l1_distances"`
}

// NewDataset returns the JOB comparison dataset.
// Every call builds fresh maps, so callers never share mutable state.
func NewDataset() *Dataset {
	return &Dataset{
		Benchmark:    "JOB",
		TotalQueries: 113,
		WinningQueries: map[System]int{
			SystemCOMPASS:    63,
			SystemPostgreSQL: 39,
		},
		JoinDistribution: map[Bucket]BucketWins{
			Bucket4To9: {
				Wins:  map[System]int{SystemCOMPASS: 17, SystemPostgreSQL: 13},
				Total: 37,
			},
			Bucket10To19: {
				Wins:  map[System]int{SystemCOMPASS: 33, SystemPostgreSQL: 19},
				Total: 52,
			},
			Bucket20To28: {
				Wins:  map[System]int{SystemCOMPASS: 13, SystemPostgreSQL: 7},
				Total: 24,
			},
		},
		PerformanceMetrics: map[Bucket]map[System]Metrics{
			Bucket4To9: {
				SystemCOMPASS:    {Cardinality: 1249, ExecutionTimeMS: 120},
				SystemPostgreSQL: {Cardinality: 2500, ExecutionTimeMS: 180},
			},
			Bucket10To19: {
				SystemCOMPASS:    {Cardinality: 5000, ExecutionTimeMS: 350},
				SystemPostgreSQL: {Cardinality: 15000, ExecutionTimeMS: 580},
			},
			Bucket20To28: {
				SystemCOMPASS:    {Cardinality: 8000, ExecutionTimeMS: 780},
				SystemPostgreSQL: {Cardinality: 35000, ExecutionTimeMS: 1200},
			},
		},
		L1Distances: map[Bucket]map[System]float64{
			Bucket4To9:   {SystemCOMPASS: 2.5, SystemPostgreSQL: 4.8},
			Bucket10To19: {SystemCOMPASS: 4.2, SystemPostgreSQL: 7.5},
			Bucket20To28: {SystemCOMPASS: 5.8, SystemPostgreSQL: 11.2},
		},
	}
}

// Percentage returns count as a percentage of total.
// A non-positive total yields 0.
func Percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// WinShare returns the percentage of all queries won by the system.
func (d *Dataset) WinShare(s System) float64 {
	return Percentage(d.WinningQueries[s], d.TotalQueries)
}

// BucketWinsFor returns the wins of the system in the bucket and the bucket size.
func (d *Dataset) BucketWinsFor(b Bucket, s System) (wins, total int) {
	bw := d.JoinDistribution[b]
	return bw.Wins[s], bw.Total
}

// Validate checks the structural invariants of the dataset:
// every system and bucket is present, total wins do not exceed the
// workload, per-bucket wins do not exceed the bucket size and the bucket
// sizes add up to the workload.
func (d *Dataset) Validate() error {
	wins := 0
	for _, s := range Systems() {
		n, ok := d.WinningQueries[s]
		if !ok {
			return fmt.Errorf("%w: %s in winning queries", ErrMissingSystem, s)
		}
		wins += n
	}
	if wins > d.TotalQueries {
		return fmt.Errorf("%w: %d > %d", ErrWinsExceedTotal, wins, d.TotalQueries)
	}

	bucketTotal := 0
	for _, b := range Buckets() {
		bw, ok := d.JoinDistribution[b]
		if !ok {
			return fmt.Errorf("%w: %s in join distribution", ErrMissingBucket, b)
		}
		inBucket := 0
		for _, s := range Systems() {
			n, ok := bw.Wins[s]
			if !ok {
				return fmt.Errorf("%w: %s in bucket %s", ErrMissingSystem, s, b)
			}
			inBucket += n
		}
		if inBucket > bw.Total {
			return fmt.Errorf("%w: bucket %s has %d wins for %d queries",
				ErrBucketWinsExceedTotal, b, inBucket, bw.Total)
		}
		bucketTotal += bw.Total

		if _, ok := d.PerformanceMetrics[b]; !ok {
			return fmt.Errorf("%w: %s in performance metrics", ErrMissingBucket, b)
		}
		if _, ok := d.L1Distances[b]; !ok {
			return fmt.Errorf("%w: %s in l1 distances", ErrMissingBucket, b)
		}
		for _, s := range Systems() {
			if _, ok := d.PerformanceMetrics[b][s]; !ok {
				return fmt.Errorf("%w: %s in performance metrics for bucket %s", ErrMissingSystem, s, b)
			}
			if _, ok := d.L1Distances[b][s]; !ok {
				return fmt.Errorf("%w: %s in l1 distances for bucket %s", ErrMissingSystem, s, b)
			}
		}
	}
	if bucketTotal != d.TotalQueries {
		return fmt.Errorf("%w: %d != %d", ErrBucketTotalsMismatch, bucketTotal, d.TotalQueries)
	}

	return nil
}
