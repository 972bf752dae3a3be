// Copyright 2021 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import (
	"github.com/ecodeclub/ekit/set"
	"github.com/ecodeclub/randgroup/grouperr"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Check 校验 groups 是否是 elements 的一个均衡划分：
// 组数正确，每个元素恰好出现一次，每组人数为 n/k 或 n/k+1，
// 且人数为 n/k+1 的组恰好有 n%k 个。
// k <= 0 时要求只有一组。所有问题会合并成一个 error 返回。
func Check[T comparable](elements []T, k int, groups [][]T) error {
	var err error
	wantGroups := k
	if k <= 0 {
		wantGroups = 1
	}
	if len(groups) != wantGroups {
		err = multierr.Append(err, errors.Wrapf(grouperr.ErrGroupCount, "期望 %d 组，实际 %d 组", wantGroups, len(groups)))
	}

	remaining := make(map[T]int, len(elements))
	for _, e := range elements {
		remaining[e]++
	}
	seen := set.NewMapSet[T](len(elements))
	for idx, g := range groups {
		for _, e := range g {
			if seen.Exist(e) {
				err = multierr.Append(err, errors.Wrapf(grouperr.ErrDuplicateElement, "第 %d 组: %v", idx, e))
			}
			seen.Add(e)
			cnt, ok := remaining[e]
			if !ok {
				err = multierr.Append(err, errors.Wrapf(grouperr.ErrUnknownElement, "第 %d 组: %v", idx, e))
				continue
			}
			remaining[e] = cnt - 1
		}
	}
	for e, cnt := range remaining {
		if cnt > 0 {
			err = multierr.Append(err, errors.Wrapf(grouperr.ErrMissingElement, "%v", e))
		}
	}

	if k > 0 && len(groups) == k {
		err = multierr.Append(err, checkBalance(len(elements), k, groups))
	}
	return err
}

func checkBalance[T any](n, k int, groups [][]T) error {
	var err error
	low, large := n/k, n%k
	bigGroups := 0
	for idx, g := range groups {
		switch {
		case len(g) == low:
		case len(g) == low+1 && large > 0:
			bigGroups++
		default:
			err = multierr.Append(err, errors.Wrapf(grouperr.ErrUnbalanced,
				"第 %d 组有 %d 个元素，期望 %d 或 %d", idx, len(g), low, low+1))
		}
	}
	if err == nil && bigGroups != large {
		err = errors.Wrapf(grouperr.ErrUnbalanced, "%d 个组有 %d 个元素，期望 %d 个", bigGroups, low+1, large)
	}
	return err
}
