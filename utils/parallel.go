package utils

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// GroupWorkFunc does the work for items in [from, to). groupNum identifies the group.
type GroupWorkFunc func(groupNum, from, to int) error

// GroupWorkParallel splits totalSize work items into at most numGroups contiguous groups and runs
// each group on its own goroutine. A non-positive numGroups uses ParallelFactor. The first error
// returned by any group is returned once every group has finished. Panics inside a group are
// recovered and reported as errors.
func GroupWorkParallel(ctx context.Context, numGroups, totalSize int, groupWork GroupWorkFunc) error {
	if totalSize <= 0 {
		return nil
	}
	if numGroups <= 0 {
		numGroups = ParallelFactor
	}
	if numGroups > totalSize {
		numGroups = totalSize
	}
	groupSize := totalSize / numGroups
	extra := totalSize % numGroups

	g, ctx := errgroup.WithContext(ctx)
	from := 0
	for groupNum := 0; groupNum < numGroups; groupNum++ {
		size := groupSize
		// spread the remainder over the first groups
		if groupNum < extra {
			size++
		}
		groupNum, start, end := groupNum, from, from+size
		from = end
		g.Go(func() (err error) {
			defer func() {
				if thePanic := recover(); thePanic != nil {
					err = fmt.Errorf("got panic running group %d in parallel: %v", groupNum, thePanic)
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			return groupWork(groupNum, start, end)
		})
	}
	return g.Wait()
}
