// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framestats

import "context"

// ProcessAll processes each named dataset on its own goroutine and
// waits for all of them. Results are in the order of names. A failed
// dataset does not stop the others.
func ProcessAll(ctx context.Context, w *Worker, names []string) ([]DatasetResult, error) {
	if len(names) == 0 {
		return nil, ErrUsage
	}

	type task struct {
		name string
		res  chan DatasetResult
	}
	tasks := make([]task, len(names))
	for i, name := range names {
		tasks[i] = task{name, make(chan DatasetResult, 1)}
		go func(t task) {
			t.res <- w.Process(ctx, t.name)
		}(tasks[i])
	}

	// Gather results in task order, not completion order.
	results := make([]DatasetResult, len(tasks))
	for i, t := range tasks {
		results[i] = <-t.res
	}
	return results, nil
}
