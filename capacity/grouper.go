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

// Package capacity 按容量上限随机分组：顺序扫描每个元素，随机挑一个组，
// 该组满了就线性往后找，直到找到没满的组。
package capacity

import (
	"github.com/ecodeclub/randgroup"
	"github.com/ecodeclub/randgroup/internal/randx"
)

var _ randgroup.Grouper = (*Grouper)(nil)

type Grouper struct {
	src randgroup.Source
}

type Option func(g *Grouper)

// WithSource 指定随机数来源。src 不是并发安全的话，Grouper 也不是。
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

// RandGroup 将 elements 随机均匀分成 k 组，每组人数为 n/k 到 n/k+1。
// 时间复杂度 O(n)。
func RandGroup(elements []string, k int) [][]string {
	return Assign[string](nil, elements, k)
}

// Assign 是 RandGroup 的泛型版本，src 为 nil 时使用默认随机数来源。
// k <= 0 时原样返回一组（先于空输入判断），空输入返回 k 个空组。
func Assign[T any](src randgroup.Source, elements []T, k int) [][]T {
	if k <= 0 {
		group := make([]T, len(elements))
		copy(group, elements)
		return [][]T{group}
	}
	n := len(elements)
	high := (n + k - 1) / k
	groups := make([][]T, k)
	for i := range groups {
		groups[i] = make([]T, 0, high)
	}
	if n == 0 {
		return groups
	}
	if src == nil {
		r := randx.Get()
		defer randx.Put(r)
		src = r
	}
	// 第一阶段每组最多 high-1 个，结束后每组恰好 high-1 个；
	// 第二阶段剩下的元素只能落到还没到 high 的组里
	boundary := k * (high - 1)
	place(src, groups, elements[:boundary], high-1)
	place(src, groups, elements[boundary:], high)
	return groups
}

func place[T any](src randgroup.Source, groups [][]T, elements []T, ceiling int) {
	k := len(groups)
	for _, e := range elements {
		r := src.Intn(k)
		for len(groups[r]) >= ceiling {
			r++
			if r == k {
				r = 0
			}
		}
		groups[r] = append(groups[r], e)
	}
}
