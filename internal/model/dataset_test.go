package model

import (
	"errors"
	"math"
	"testing"
)

// TestNewDataset verifies the embedded benchmark figures.
func TestNewDataset(t *testing.T) {
	t.Parallel()

	ds := NewDataset()

	t.Run("total queries is 113", func(t *testing.T) {
		t.Parallel()
		if ds.TotalQueries != 113 {
			t.Errorf("expected 113 total queries, got %d", ds.TotalQueries)
		}
	})

	t.Run("winning queries", func(t *testing.T) {
		t.Parallel()
		if ds.WinningQueries[SystemCOMPASS] != 63 {
			t.Errorf("expected COMPASS to win 63, got %d", ds.WinningQueries[SystemCOMPASS])
		}
		if ds.WinningQueries[SystemPostgreSQL] != 39 {
			t.Errorf("expected PostgreSQL to win 39, got %d", ds.WinningQueries[SystemPostgreSQL])
		}
	})

	t.Run("bucket 10-19 distribution", func(t *testing.T) {
		t.Parallel()
		bw := ds.JoinDistribution[Bucket10To19]
		if bw.Wins[SystemCOMPASS] != 33 || bw.Wins[SystemPostgreSQL] != 19 || bw.Total != 52 {
			t.Errorf("unexpected 10-19 distribution: %+v", bw)
		}
	})

	t.Run("performance metrics", func(t *testing.T) {
		t.Parallel()
		got := ds.PerformanceMetrics[Bucket20To28][SystemPostgreSQL]
		if got.Cardinality != 35000 || got.ExecutionTimeMS != 1200 {
			t.Errorf("unexpected 20-28 PostgreSQL metrics: %+v", got)
		}
		got = ds.PerformanceMetrics[Bucket4To9][SystemCOMPASS]
		if got.Cardinality != 1249 || got.ExecutionTimeMS != 120 {
			t.Errorf("unexpected 4-9 COMPASS metrics: %+v", got)
		}
	})

	t.Run("l1 distances", func(t *testing.T) {
		t.Parallel()
		if ds.L1Distances[Bucket10To19][SystemCOMPASS] != 4.2 {
			t.Errorf("expected 4.2, got %v", ds.L1Distances[Bucket10To19][SystemCOMPASS])
		}
		if ds.L1Distances[Bucket20To28][SystemPostgreSQL] != 11.2 {
			t.Errorf("expected 11.2, got %v", ds.L1Distances[Bucket20To28][SystemPostgreSQL])
		}
	})

	t.Run("returns independent copies", func(t *testing.T) {
		t.Parallel()
		a := NewDataset()
		b := NewDataset()
		a.WinningQueries[SystemCOMPASS] = 0
		if b.WinningQueries[SystemCOMPASS] != 63 {
			t.Error("expected datasets not to share maps")
		}
	})
}

// TestDatasetInvariants checks the structural properties of the embedded data.
func TestDatasetInvariants(t *testing.T) {
	t.Parallel()

	ds := NewDataset()

	t.Run("bucket wins do not exceed bucket totals", func(t *testing.T) {
		t.Parallel()
		for _, b := range Buckets() {
			a, total := ds.BucketWinsFor(b, SystemCOMPASS)
			p, _ := ds.BucketWinsFor(b, SystemPostgreSQL)
			if a+p > total {
				t.Errorf("bucket %s: %d + %d > %d", b, a, p, total)
			}
		}
	})

	t.Run("bucket totals sum to total queries", func(t *testing.T) {
		t.Parallel()
		sum := 0
		for _, b := range Buckets() {
			sum += ds.JoinDistribution[b].Total
		}
		if sum != ds.TotalQueries {
			t.Errorf("expected bucket totals to sum to %d, got %d", ds.TotalQueries, sum)
		}
	})

	t.Run("system wins do not exceed total queries", func(t *testing.T) {
		t.Parallel()
		if ds.WinningQueries[SystemCOMPASS]+ds.WinningQueries[SystemPostgreSQL] > ds.TotalQueries {
			t.Error("expected wins to be at most total queries")
		}
	})

	t.Run("validate accepts embedded dataset", func(t *testing.T) {
		t.Parallel()
		if err := ds.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestDatasetValidate tests that each broken invariant maps to its sentinel error.
func TestDatasetValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(ds *Dataset)
		wantErr error
	}{
		{
			name:    "wins exceed total",
			mutate:  func(ds *Dataset) { ds.WinningQueries[SystemCOMPASS] = 100 },
			wantErr: ErrWinsExceedTotal,
		},
		{
			name: "bucket wins exceed bucket total",
			mutate: func(ds *Dataset) {
				bw := ds.JoinDistribution[Bucket4To9]
				bw.Wins[SystemPostgreSQL] = 30
			},
			wantErr: ErrBucketWinsExceedTotal,
		},
		{
			name: "bucket totals mismatch",
			mutate: func(ds *Dataset) {
				bw := ds.JoinDistribution[Bucket20To28]
				bw.Total = 30
				ds.JoinDistribution[Bucket20To28] = bw
			},
			wantErr: ErrBucketTotalsMismatch,
		},
		{
			name:    "missing system in winning queries",
			mutate:  func(ds *Dataset) { delete(ds.WinningQueries, SystemPostgreSQL) },
			wantErr: ErrMissingSystem,
		},
		{
			name:    "missing bucket in join distribution",
			mutate:  func(ds *Dataset) { delete(ds.JoinDistribution, Bucket10To19) },
			wantErr: ErrMissingBucket,
		},
		{
			name:    "missing bucket in performance metrics",
			mutate:  func(ds *Dataset) { delete(ds.PerformanceMetrics, Bucket4To9) },
			wantErr: ErrMissingBucket,
		},
		{
			name:    "missing system in l1 distances",
			mutate:  func(ds *Dataset) { delete(ds.L1Distances[Bucket20To28], SystemCOMPASS) },
			wantErr: ErrMissingSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ds := NewDataset()
			tt.mutate(ds)

			err := ds.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestPercentage tests percentage arithmetic and its rounding in reports.
func TestPercentage(t *testing.T) {
	t.Parallel()

	t.Run("COMPASS share", func(t *testing.T) {
		t.Parallel()
		got := NewDataset().WinShare(SystemCOMPASS)
		if math.Round(got*10)/10 != 55.8 {
			t.Errorf("expected 55.8 at one decimal, got %v", got)
		}
	})

	t.Run("PostgreSQL share", func(t *testing.T) {
		t.Parallel()
		got := NewDataset().WinShare(SystemPostgreSQL)
		if math.Round(got*10)/10 != 34.5 {
			t.Errorf("expected 34.5 at one decimal, got %v", got)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		t.Parallel()
		if got := Percentage(5, 0); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

// TestOrdering verifies presentation order helpers.
func TestOrdering(t *testing.T) {
	t.Parallel()

	buckets := Buckets()
	want := []string{"4-9", "10-19", "20-28"}
	for i, b := range buckets {
		if b.String() != want[i] {
			t.Errorf("bucket %d: expected %q, got %q", i, want[i], b)
		}
	}
	if Bucket10To19.Label() != "10-19 Joins" {
		t.Errorf("expected label '10-19 Joins', got %q", Bucket10To19.Label())
	}

	systems := Systems()
	if len(systems) != 2 || systems[0] != SystemCOMPASS || systems[1] != SystemPostgreSQL {
		t.Errorf("unexpected systems order: %v", systems)
	}
}
