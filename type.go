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

package randgroup

// Source 随机数来源，*rand.Rand 满足该接口
type Source interface {
	// Intn 返回 [0, n) 之间的随机整数，n > 0
	Intn(n int) int
}

// Grouper 将一组互不相同的标识随机、均衡地分成 k 组
type Grouper interface {
	// Group 任意两组的人数差不超过 1，每个元素恰好出现在一个组里。
	// k <= 0 时返回只有一组的结果。
	Group(elements []string, k int) [][]string
}

// Func 分组算法本身，src 为 nil 时使用默认的随机数来源
type Func[T any] func(src Source, elements []T, k int) [][]T
