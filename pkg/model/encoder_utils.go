package model

import (
	"github.com/limaJavier/einstein/pkg/sat"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type generator func() ([][]int64, error)

// buildSat runs every generator on its own goroutine and concatenates their clauses in the generators' order, so the
// resulting instance does not depend on scheduling
func buildSat(variables uint64, generators []generator) (sat.SAT, error) {
	results := make([][][]int64, len(generators)) // One slot per generator keeps the canonical order

	var group errgroup.Group
	for i, generate := range generators {
		group.Go(func() error {
			clauses, err := generate()
			if err != nil {
				return err
			}
			results[i] = clauses
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return sat.SAT{}, err
	}

	return sat.SAT{
		Variables: variables,
		Clauses:   lo.Flatten(results),
	}, nil
}
