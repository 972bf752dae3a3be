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

package random

import (
	"github.com/ecodeclub/ekit/set"
	"github.com/ecodeclub/randgroup"
	"github.com/ecodeclub/randgroup/assigner"
	"github.com/ecodeclub/randgroup/capacity"
	"github.com/ecodeclub/randgroup/grouperr"
	"github.com/pkg/errors"
)

var _ assigner.ConsumerPartitionAssigner = (*Assigner)(nil)

// Assigner 把分区随机、均衡地分给消费者，
// 每个消费者分到 partitions/len(consumers) 或者多一个分区
type Assigner struct {
	src    randgroup.Source
	assign randgroup.Func[int]
}

type Option func(a *Assigner)

func WithSource(src randgroup.Source) Option {
	return func(a *Assigner) {
		a.src = src
	}
}

// WithAssignFunc 替换分组算法，默认是 capacity.Assign
func WithAssignFunc(fn randgroup.Func[int]) Option {
	return func(a *Assigner) {
		a.assign = fn
	}
}

func NewAssigner(opts ...Option) (*Assigner, error) {
	a := &Assigner{
		assign: capacity.Assign[int],
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.assign == nil {
		return nil, errors.Wrap(grouperr.ErrInvalidArgument, "assigner: 分组算法不能为nil")
	}
	return a, nil
}

// AssignPartition 没有消费者时返回空map，每个消费者都会出现在结果里，
// 重复的消费者只算一次
func (a *Assigner) AssignPartition(consumers []string, partitions int) map[string][]int {
	result := make(map[string][]int, len(consumers))
	seen := set.NewMapSet[string](len(consumers))
	unique := make([]string, 0, len(consumers))
	for _, c := range consumers {
		if seen.Exist(c) {
			continue
		}
		seen.Add(c)
		unique = append(unique, c)
	}
	consumers = unique
	if len(consumers) == 0 {
		return result
	}
	ids := make([]int, 0, partitions)
	for i := 0; i < partitions; i++ {
		ids = append(ids, i)
	}
	groups := a.assign(a.src, ids, len(consumers))
	for i, consumer := range consumers {
		result[consumer] = groups[i]
	}
	return result
}
