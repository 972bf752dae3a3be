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

package randx

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/ekit/syncx"
)

var (
	seq  atomic.Int64
	pool = syncx.NewPool[*rand.Rand](func() *rand.Rand {
		// 同一纳秒内创建的生成器也要拿到不同的种子
		return rand.New(rand.NewSource(time.Now().UnixNano() + seq.Add(1)))
	})
)

// Get 从池里借一个生成器，用完必须 Put 回去。
// 借出期间生成器只属于调用方，所以不需要加锁。
func Get() *rand.Rand {
	return pool.Get()
}

func Put(r *rand.Rand) {
	pool.Put(r)
}
