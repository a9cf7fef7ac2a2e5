package minify

import (
	"fmt"
	"sync"
)

// MinifyAll minifies independent tables with the same configuration.
// When config.EnableParallel is true, tables are processed concurrently.
// Otherwise, tables are processed sequentially. Results are in table
// order.
func MinifyAll(tables [][]Point, config *Config) ([]*Result, error) {
	p, err := buildMinifyPipeline(config)
	if err != nil {
		return nil, err
	}

	output := make([]*Result, len(tables))

	// Sequential processing (default or when parallel disabled)
	if !config.EnableParallel || len(tables) < minParallelTables {
		for i, table := range tables {
			res, report, err := p.Minify(table)
			if err != nil {
				return nil, fmt.Errorf("table %d: %w", i, err)
			}
			output[i] = &Result{ThinResult: res, Report: report}
		}
		return output, nil
	}

	// Parallel processing: the pipeline holds no per-run state
	var wg sync.WaitGroup
	errChan := make(chan error, len(tables))

	for i := range tables {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			res, report, err := p.Minify(tables[index])
			if err != nil {
				errChan <- fmt.Errorf("table %d: %w", index, err)
				return
			}
			output[index] = &Result{ThinResult: res, Report: report}
		}(i)
	}

	wg.Wait()
	close(errChan)

	// Check for errors
	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}
