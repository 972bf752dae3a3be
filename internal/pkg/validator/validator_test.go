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

package validator_test

import (
	"testing"

	"github.com/ecodeclub/randgroup/grouperr"
	"github.com/ecodeclub/randgroup/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	elements := []string{"a", "b", "c", "d", "e"}
	testCases := []struct {
		name     string
		elements []string
		k        int
		groups   [][]string

		wantErrs []error
	}{
		{
			name:     "合法划分_有余数",
			elements: elements,
			k:        2,
			groups:   [][]string{{"e", "a", "c"}, {"b", "d"}},
		},
		{
			name:     "合法划分_整除",
			elements: elements[:4],
			k:        2,
			groups:   [][]string{{"d", "a"}, {"b", "c"}},
		},
		{
			name:     "组数大于元素个数_允许空组",
			elements: elements[:2],
			k:        4,
			groups:   [][]string{{}, {"b"}, {}, {"a"}},
		},
		{
			name:     "k为0_只有一组",
			elements: elements,
			k:        0,
			groups:   [][]string{elements},
		},
		{
			name:     "空输入",
			elements: nil,
			k:        3,
			groups:   [][]string{{}, {}, {}},
		},
		{
			name:     "组数不对",
			elements: elements,
			k:        3,
			groups:   [][]string{{"a", "b", "c"}, {"d", "e"}},
			wantErrs: []error{grouperr.ErrGroupCount},
		},
		{
			name:     "元素重复",
			elements: elements,
			k:        2,
			groups:   [][]string{{"a", "b", "c"}, {"d", "e", "a"}},
			wantErrs: []error{grouperr.ErrDuplicateElement, grouperr.ErrUnbalanced},
		},
		{
			name:     "元素丢失",
			elements: elements,
			k:        2,
			groups:   [][]string{{"a", "b"}, {"d", "e"}},
			wantErrs: []error{grouperr.ErrMissingElement, grouperr.ErrUnbalanced},
		},
		{
			name:     "未知元素",
			elements: elements,
			k:        2,
			groups:   [][]string{{"a", "b", "x"}, {"d", "e"}},
			wantErrs: []error{grouperr.ErrUnknownElement, grouperr.ErrMissingElement},
		},
		{
			name:     "人数不均衡",
			elements: elements,
			k:        2,
			groups:   [][]string{{"a", "b", "c", "d"}, {"e"}},
			wantErrs: []error{grouperr.ErrUnbalanced},
		},
		{
			name:     "整除时不允许出现大组",
			elements: elements[:4],
			k:        2,
			groups:   [][]string{{"a", "b", "c"}, {"d"}},
			wantErrs: []error{grouperr.ErrUnbalanced},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Check(tc.elements, tc.k, tc.groups)
			if len(tc.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			for _, want := range tc.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestCheck_ReportsEveryProblem(t *testing.T) {
	t.Parallel()
	err := validator.Check([]int{1, 2, 3, 4}, 2, [][]int{{1, 1}, {5, 2}})
	// 重复的 1，未知的 5，缺失的 3 和 4
	assert.Len(t, multierr.Errors(err), 4)
}
