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

package grouperr

import "github.com/pkg/errors"

var (
	ErrGroupCount       = errors.New("分组数量不正确")
	ErrDuplicateElement = errors.New("元素被重复分配")
	ErrMissingElement   = errors.New("元素没有被分配")
	ErrUnknownElement   = errors.New("分组中出现了未知元素")
	ErrUnbalanced       = errors.New("分组人数不均衡")
	ErrInvalidArgument  = errors.New("非法参数")
)
