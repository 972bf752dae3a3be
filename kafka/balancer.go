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

package kafka

import (
	"log"
	"sort"

	"github.com/ecodeclub/ekit/set"
	"github.com/ecodeclub/randgroup"
	"github.com/ecodeclub/randgroup/capacity"
	"github.com/ecodeclub/randgroup/grouperr"
	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
)

// ProtocolName 消费组协商分配策略时使用的名字
const ProtocolName = "randgroup"

var ErrInvalidArgument = grouperr.ErrInvalidArgument

var _ kafkago.GroupBalancer = (*RandomGroupBalancer)(nil)

// RandomGroupBalancer 按 topic 把分区随机、均衡地分给订阅了该 topic 的消费者
type RandomGroupBalancer struct {
	src    randgroup.Source
	assign randgroup.Func[int]
}

type Option func(b *RandomGroupBalancer)

func WithSource(src randgroup.Source) Option {
	return func(b *RandomGroupBalancer) {
		b.src = src
	}
}

func WithAssignFunc(fn randgroup.Func[int]) Option {
	return func(b *RandomGroupBalancer) {
		b.assign = fn
	}
}

func NewRandomGroupBalancer(opts ...Option) (*RandomGroupBalancer, error) {
	b := &RandomGroupBalancer{
		assign: capacity.Assign[int],
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.assign == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "kafka: 分组算法不能为nil")
	}
	return b, nil
}

func (b *RandomGroupBalancer) ProtocolName() string {
	return ProtocolName
}

func (b *RandomGroupBalancer) UserData() ([]byte, error) {
	return nil, nil
}

func (b *RandomGroupBalancer) AssignGroups(members []kafkago.GroupMember, partitions []kafkago.Partition) kafkago.GroupMemberAssignments {
	res := make(kafkago.GroupMemberAssignments, len(members))
	subscribers := make(map[string][]string)
	// 同一个消费者重复订阅同一个 topic 只能占一个分组
	seen := make(map[string]*set.MapSet[string])
	for _, m := range members {
		res[m.ID] = make(map[string][]int)
		for _, topic := range m.Topics {
			ms, ok := seen[topic]
			if !ok {
				ms = set.NewMapSet[string](len(members))
				seen[topic] = ms
			}
			if ms.Exist(m.ID) {
				continue
			}
			ms.Add(m.ID)
			subscribers[topic] = append(subscribers[topic], m.ID)
		}
	}
	topicPartitions := make(map[string][]int)
	for _, p := range partitions {
		topicPartitions[p.Topic] = append(topicPartitions[p.Topic], p.ID)
	}

	for topic, ids := range topicPartitions {
		memberIDs := subscribers[topic]
		if len(memberIDs) == 0 {
			log.Printf("topic %s 没有消费者订阅，跳过 %d 个分区", topic, len(ids))
			continue
		}
		// 排序后同样的随机数序列得到同样的分配结果
		sort.Strings(memberIDs)
		sort.Ints(ids)
		groups := b.assign(b.src, ids, len(memberIDs))
		for i, id := range memberIDs {
			res[id][topic] = groups[i]
		}
	}
	return res
}
