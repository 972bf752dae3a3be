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

package drawswap

import (
	"github.com/ecodeclub/randgroup"
	"github.com/ecodeclub/randgroup/internal/randx"
)

var _ randgroup.Grouper = (*Grouper)(nil)

type Grouper struct {
	src randgroup.Source
}

type Option func(g *Grouper)

func WithSource(src randgroup.Source) Option {
	return func(g *Grouper) {
		g.src = src
	}
}

func NewGrouper(opts ...Option) *Grouper {
	g := &Grouper{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Grouper) Group(elements []string, k int) [][]string {
	return Assign(g.src, elements, k)
}

// RandGroupSelect 模拟每个组轮流抽人：第 i 次随机抽中的元素分到第 i%k 组。
// n 次抽取和 n 次交换，时间复杂度 O(n)。
func RandGroupSelect(elements []string, k int) [][]string {
	return Assign[string](nil, elements, k)
}

// Assign 是 RandGroupSelect 的泛型版本，边界情况的处理和 capacity.Assign 一致。
func Assign[T any](src randgroup.Source, elements []T, k int) [][]T {
	if k <= 0 {
		group := make([]T, len(elements))
		copy(group, elements)
		return [][]T{group}
	}
	n := len(elements)
	groups := make([][]T, k)
	for i := range groups {
		groups[i] = make([]T, 0, (n+k-1)/k)
	}
	if n == 0 {
		return groups
	}
	if src == nil {
		r := randx.Get()
		defer randx.Put(r)
		src = r
	}
	// [0, tail) 是还没被抽中的元素
	work := make([]T, n)
	copy(work, elements)
	tail := n
	for i := 0; i < n; i++ {
		r := src.Intn(tail)
		tail--
		groups[i%k] = append(groups[i%k], work[r])
		work[r], work[tail] = work[tail], work[r]
	}
	return groups
}
