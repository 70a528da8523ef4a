// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/descent/calc"
	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
)

// result is the outcome of running the calc pipeline over one input.
type result struct {
	file   *source.File
	report *report.Report
	expr   calc.Expr
	value  uint64
	ok     bool
}

// analyze parses and checks file, and evaluates it too if eval is set.
func (o *options) analyze(file *source.File, eval bool) result {
	r := new(report.Report)
	res := result{file: file, report: r}

	expr, err := calc.Parse(file, r, o.config)
	if err != nil {
		r.AddError(err)
		return res
	}
	res.expr = expr
	if !calc.Check(expr, r) || r.HasErrors() {
		return res
	}

	if eval {
		res.value, err = calc.Eval(expr)
		if err != nil {
			r.AddError(err)
			return res
		}
	}
	res.ok = true
	return res
}

// analyzeAll runs analyze over every input with at most jobs of them in
// flight. Results are in the same order as args.
func (o *options) analyzeAll(ctx context.Context, args []string, jobs int, eval bool) ([]result, error) {
	if jobs < 1 {
		jobs = 1
	}
	sem := semaphore.NewWeighted(int64(jobs))
	results := make([]result, len(args))
	errs := make([]error, len(args))

	var wg sync.WaitGroup
	for i, arg := range args {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			file, err := readInput(arg)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = o.analyze(file, eval)
			o.logger.Debug("analyzed input",
				"path", file.Path(),
				"ok", results[i].ok,
				"diagnostics", len(results[i].report.Diagnostics),
			)
		}()
	}
	wg.Wait()
	return results, errors.Join(errs...)
}
