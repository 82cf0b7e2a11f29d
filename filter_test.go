// Copyright 2026 The LUCI Authors.
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

package bigtable

import (
	"testing"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"go.chromium.org/bigtable/internal/btpb"
)

func TestFilterProtos(t *testing.T) {
	t.Parallel()

	ftt.Run("Simple filters map to the right proto variant", t, func(t *ftt.Test) {
		assert.Loosely(t, RowKeyFilter("greeting=.*").proto().GetRowKeyRegexFilter(),
			should.Match([]byte("greeting=.*")))
		assert.Loosely(t, FamilyFilter("fam").proto().GetFamilyNameRegexFilter(),
			should.Equal("fam"))
		assert.Loosely(t, ColumnFilter("col").proto().GetColumnQualifierRegexFilter(),
			should.Match([]byte("col")))
		assert.Loosely(t, ValueFilter("val.*").proto().GetValueRegexFilter(),
			should.Match([]byte("val.*")))
		assert.Loosely(t, LatestNFilter(4).proto().GetCellsPerColumnLimitFilter(),
			should.Equal(4))
		assert.Loosely(t, StripValueFilter().proto().GetStripValueTransformer(),
			should.BeTrue)
		assert.Loosely(t, CellsPerRowLimitFilter(7).proto().GetCellsPerRowLimitFilter(),
			should.Equal(7))
		assert.Loosely(t, CellsPerRowOffsetFilter(2).proto().GetCellsPerRowOffsetFilter(),
			should.Equal(2))
		assert.Loosely(t, RowSampleFilter(0.5).proto().GetRowSampleFilter(),
			should.Equal(0.5))
		assert.Loosely(t, PassAllFilter().proto().GetPassAllFilter(), should.BeTrue)
		assert.Loosely(t, BlockAllFilter().proto().GetBlockAllFilter(), should.BeTrue)
	})

	ftt.Run("TimestampRangeFilter", t, func(t *ftt.Test) {
		f := TimestampRangeFilter(1000, 2000).proto().GetTimestampRangeFilter()
		assert.Loosely(t, f.StartTimestampMicros, should.Equal(1000))
		assert.Loosely(t, f.EndTimestampMicros, should.Equal(2000))
	})

	ftt.Run("ColumnRangeFilter", t, func(t *ftt.Test) {
		f := ColumnRangeFilter("fam", "b", "d").proto().GetColumnRangeFilter()
		assert.Loosely(t, f.FamilyName, should.Equal("fam"))
		assert.Loosely(t, f.GetStartQualifierInclusive(), should.Match([]byte("b")))
		assert.Loosely(t, f.GetEndQualifierExclusive(), should.Match([]byte("d")))

		t.Run("with open ends", func(t *ftt.Test) {
			f := ColumnRangeFilter("fam", "", "").proto().GetColumnRangeFilter()
			assert.Loosely(t, f.StartQualifier, should.BeNil)
			assert.Loosely(t, f.EndQualifier, should.BeNil)
		})
	})

	ftt.Run("ValueRangeFilter", t, func(t *ftt.Test) {
		f := ValueRangeFilter([]byte("lo"), []byte("hi")).proto().GetValueRangeFilter()
		assert.Loosely(t, f.GetStartValueInclusive(), should.Match([]byte("lo")))
		assert.Loosely(t, f.GetEndValueExclusive(), should.Match([]byte("hi")))
	})

	ftt.Run("Composite filters", t, func(t *ftt.Test) {
		ch := ChainFilters(FamilyFilter("fam"), LatestNFilter(1))
		chp := ch.proto().GetChain()
		assert.Loosely(t, chp.Filters, should.HaveLength(2))
		assert.Loosely(t, ch.String(), should.Equal("(col(fam:) | col(*,1))"))

		il := InterleaveFilters(ColumnFilter("a"), ColumnFilter("b"))
		ilp := il.proto().GetInterleave()
		assert.Loosely(t, ilp.Filters, should.HaveLength(2))
		assert.Loosely(t, il.String(), should.Equal("(col(.*:a) + col(.*:b))"))

		cond := ConditionFilter(FamilyFilter("fam"), StripValueFilter(), nil)
		condp := cond.proto().GetCondition()
		assert.Loosely(t, condp.PredicateFilter.GetFamilyNameRegexFilter(), should.Equal("fam"))
		assert.Loosely(t, condp.TrueFilter.GetStripValueTransformer(), should.BeTrue)
		assert.Loosely(t, condp.FalseFilter, should.BeNil)
	})
}

func TestReadOptionComposition(t *testing.T) {
	t.Parallel()

	ftt.Run("Multiple RowFilter options chain", t, func(t *ftt.Test) {
		req := &btpb.ReadRowsRequest{}
		RowFilter(FamilyFilter("fam")).set(req)
		assert.Loosely(t, req.Filter.GetFamilyNameRegexFilter(), should.Equal("fam"))

		RowFilter(ColumnFilter("col")).set(req)
		ch := req.Filter.GetChain()
		assert.Loosely(t, ch, should.NotBeNil)
		assert.Loosely(t, ch.Filters, should.HaveLength(2))

		// A third filter joins the existing chain rather than nesting.
		RowFilter(StripValueFilter()).set(req)
		assert.Loosely(t, req.Filter.GetChain().Filters, should.HaveLength(3))
	})

	ftt.Run("LimitRows", t, func(t *ftt.Test) {
		req := &btpb.ReadRowsRequest{}
		LimitRows(42).set(req)
		assert.Loosely(t, req.NumRowsLimit, should.Equal(42))
	})
}
