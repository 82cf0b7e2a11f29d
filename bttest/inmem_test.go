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

package bttest

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/protobuf/ptypes/duration"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"go.chromium.org/bigtable/internal/btpb"
	"go.chromium.org/bigtable/internal/bttdpb"
)

func TestRowStorage(t *testing.T) {
	t.Parallel()

	ftt.Run("setCell keeps cells in descending timestamp order", t, func(t *ftt.Test) {
		r := newRow("r")
		r.setCell("fam", "col", cell{ts: 1000, value: []byte("a")})
		r.setCell("fam", "col", cell{ts: 3000, value: []byte("c")})
		r.setCell("fam", "col", cell{ts: 2000, value: []byte("b")})

		cells := r.families["fam"]["col"]
		assert.Loosely(t, cells, should.HaveLength(3))
		assert.Loosely(t, cells[0].ts, should.Equal(3000))
		assert.Loosely(t, cells[1].ts, should.Equal(2000))
		assert.Loosely(t, cells[2].ts, should.Equal(1000))

		t.Run("a same-timestamp write replaces the cell", func(t *ftt.Test) {
			r.setCell("fam", "col", cell{ts: 2000, value: []byte("b2")})
			cells := r.families["fam"]["col"]
			assert.Loosely(t, cells, should.HaveLength(3))
			assert.Loosely(t, cells[1].value, should.Match([]byte("b2")))
		})
	})

	ftt.Run("copy is independent of the original", t, func(t *ftt.Test) {
		r := newRow("r")
		r.setCell("fam", "col", cell{ts: 1000, value: []byte("a")})

		cp := r.copy()
		cp.setCell("fam", "col", cell{ts: 2000, value: []byte("b")})
		assert.Loosely(t, r.families["fam"]["col"], should.HaveLength(1))
		assert.Loosely(t, cp.families["fam"]["col"], should.HaveLength(2))
	})
}

func maxVersions(n int32) *bttdpb.GcRule {
	return &bttdpb.GcRule{Rule: &bttdpb.GcRule_MaxNumVersions{MaxNumVersions: n}}
}

func maxAge(d *duration.Duration) *bttdpb.GcRule {
	return &bttdpb.GcRule{Rule: &bttdpb.GcRule_MaxAge{MaxAge: d}}
}

func TestApplyGC(t *testing.T) {
	t.Parallel()

	// Three cells at 1s, 2s and 3s, newest first. The clock reads 4s.
	cells := func() []cell {
		return []cell{
			{ts: 3e6, value: []byte("c")},
			{ts: 2e6, value: []byte("b")},
			{ts: 1e6, value: []byte("a")},
		}
	}
	clock := func() int64 { return 4e6 }

	ftt.Run("max versions", t, func(t *ftt.Test) {
		got := applyGC(cells(), maxVersions(2), clock)
		assert.Loosely(t, got, should.HaveLength(2))
		assert.Loosely(t, got[1].ts, should.Equal(int64(2e6)))
	})

	ftt.Run("max age", t, func(t *ftt.Test) {
		// Cells older than 1.5s, i.e. with ts < 2.5s, expire.
		got := applyGC(cells(), maxAge(&duration.Duration{Seconds: 1, Nanos: 5e8}), clock)
		assert.Loosely(t, got, should.HaveLength(1))
		assert.Loosely(t, got[0].ts, should.Equal(int64(3e6)))
	})

	ftt.Run("union deletes what any sub-rule deletes", t, func(t *ftt.Test) {
		rule := &bttdpb.GcRule{Rule: &bttdpb.GcRule_Union_{Union: &bttdpb.GcRule_Union{
			Rules: []*bttdpb.GcRule{
				maxVersions(2),
				maxAge(&duration.Duration{Seconds: 1, Nanos: 5e8}),
			},
		}}}
		got := applyGC(cells(), rule, clock)
		assert.Loosely(t, got, should.HaveLength(1))
		assert.Loosely(t, got[0].ts, should.Equal(int64(3e6)))
	})

	ftt.Run("intersection keeps what any sub-rule keeps", t, func(t *ftt.Test) {
		rule := &bttdpb.GcRule{Rule: &bttdpb.GcRule_Intersection_{Intersection: &bttdpb.GcRule_Intersection{
			Rules: []*bttdpb.GcRule{
				maxVersions(1),
				maxAge(&duration.Duration{Seconds: 1, Nanos: 5e8}),
			},
		}}}
		// maxVersions(1) keeps {3s}; maxAge keeps {3s}; survivors are {3s}.
		got := applyGC(cells(), rule, clock)
		assert.Loosely(t, got, should.HaveLength(1))

		// Widen the age rule so it keeps {3s, 2s}; the union of survivors grows.
		rule.GetIntersection().Rules[1] = maxAge(&duration.Duration{Seconds: 2, Nanos: 5e8})
		got = applyGC(cells(), rule, clock)
		assert.Loosely(t, got, should.HaveLength(2))
		assert.Loosely(t, got[0].ts, should.Equal(int64(3e6)))
		assert.Loosely(t, got[1].ts, should.Equal(int64(2e6)))
	})
}

func TestFilterRow(t *testing.T) {
	t.Parallel()

	mkRow := func() *row {
		r := newRow("row1")
		r.setCell("fam", "jobs", cell{ts: 2000, value: []byte("x")})
		r.setCell("fam", "jobs", cell{ts: 1000, value: []byte("y")})
		r.setCell("fam", "notjobs", cell{ts: 1000, value: []byte("z")})
		return r
	}

	ftt.Run("qualifier regexes match the whole qualifier", t, func(t *ftt.Test) {
		r := mkRow()
		ok := filterRow(&btpb.RowFilter{
			Filter: &btpb.RowFilter_ColumnQualifierRegexFilter{ColumnQualifierRegexFilter: []byte("jobs")},
		}, r)
		assert.Loosely(t, ok, should.BeTrue)
		assert.Loosely(t, r.families["fam"], should.HaveLength(1))
		assert.Loosely(t, r.families["fam"]["jobs"], should.HaveLength(2))
	})

	ftt.Run("a row with no surviving cells is dropped", t, func(t *ftt.Test) {
		r := mkRow()
		ok := filterRow(&btpb.RowFilter{
			Filter: &btpb.RowFilter_ColumnQualifierRegexFilter{ColumnQualifierRegexFilter: []byte("nosuch")},
		}, r)
		assert.Loosely(t, ok, should.BeFalse)
	})

	ftt.Run("cells per column limit applies per column", t, func(t *ftt.Test) {
		r := mkRow()
		filterRow(&btpb.RowFilter{
			Filter: &btpb.RowFilter_CellsPerColumnLimitFilter{CellsPerColumnLimitFilter: 1},
		}, r)
		assert.Loosely(t, r.families["fam"]["jobs"], should.HaveLength(1))
		assert.Loosely(t, r.families["fam"]["jobs"][0].ts, should.Equal(2000))
		assert.Loosely(t, r.families["fam"]["notjobs"], should.HaveLength(1))
	})

	ftt.Run("cells per row offset and limit count across the row", t, func(t *ftt.Test) {
		r := mkRow()
		filterRow(&btpb.RowFilter{
			Filter: &btpb.RowFilter_CellsPerRowOffsetFilter{CellsPerRowOffsetFilter: 2},
		}, r)
		assert.Loosely(t, r.families["fam"]["jobs"], should.HaveLength(0))
		assert.Loosely(t, r.families["fam"]["notjobs"], should.HaveLength(1))

		r = mkRow()
		filterRow(&btpb.RowFilter{
			Filter: &btpb.RowFilter_CellsPerRowLimitFilter{CellsPerRowLimitFilter: 2},
		}, r)
		assert.Loosely(t, r.families["fam"]["jobs"], should.HaveLength(2))
		assert.Loosely(t, r.families["fam"], should.HaveLength(1))
	})

	ftt.Run("interleave merges without duplicating cells", t, func(t *ftt.Test) {
		r := mkRow()
		ok := filterRow(&btpb.RowFilter{
			Filter: &btpb.RowFilter_Interleave_{Interleave: &btpb.RowFilter_Interleave{
				Filters: []*btpb.RowFilter{
					{Filter: &btpb.RowFilter_ColumnQualifierRegexFilter{ColumnQualifierRegexFilter: []byte("jobs")}},
					{Filter: &btpb.RowFilter_ColumnQualifierRegexFilter{ColumnQualifierRegexFilter: []byte(".*jobs")}},
				},
			}},
		}, r)
		assert.Loosely(t, ok, should.BeTrue)
		assert.Loosely(t, r.families["fam"]["jobs"], should.HaveLength(2))
		assert.Loosely(t, r.families["fam"]["notjobs"], should.HaveLength(1))
	})

	ftt.Run("condition picks the true filter when a cell matches", t, func(t *ftt.Test) {
		r := mkRow()
		ok := filterRow(&btpb.RowFilter{
			Filter: &btpb.RowFilter_Condition_{Condition: &btpb.RowFilter_Condition{
				PredicateFilter: &btpb.RowFilter{
					Filter: &btpb.RowFilter_ColumnQualifierRegexFilter{ColumnQualifierRegexFilter: []byte("jobs")},
				},
				TrueFilter: &btpb.RowFilter{
					Filter: &btpb.RowFilter_StripValueTransformer{StripValueTransformer: true},
				},
			}},
		}, r)
		assert.Loosely(t, ok, should.BeTrue)
		assert.Loosely(t, r.families["fam"]["jobs"][0].value, should.HaveLength(0))

		t.Run("and drops the row when the matching arm is absent", func(t *ftt.Test) {
			r := mkRow()
			ok := filterRow(&btpb.RowFilter{
				Filter: &btpb.RowFilter_Condition_{Condition: &btpb.RowFilter_Condition{
					PredicateFilter: &btpb.RowFilter{
						Filter: &btpb.RowFilter_ColumnQualifierRegexFilter{ColumnQualifierRegexFilter: []byte("nosuch")},
					},
					TrueFilter: &btpb.RowFilter{
						Filter: &btpb.RowFilter_PassAllFilter{PassAllFilter: true},
					},
				}},
			}, r)
			assert.Loosely(t, ok, should.BeFalse)
		})
	})
}

func TestReadModifyWrite(t *testing.T) {
	t.Parallel()

	ftt.Run("With a table and family", t, func(t *ftt.Test) {
		ctx := context.Background()
		clock := int64(10000)
		s := &server{
			clusters: make(map[string]*cluster),
			tables:   make(map[string]*table),
			Clock:    func() int64 { return clock },
		}
		const clusterName = "projects/p/zones/z/clusters/c"
		const tblName = clusterName + "/tables/t"
		_, err := s.CreateTable(ctx, &bttdpb.CreateTableRequest{Name: clusterName, TableId: "t"})
		assert.Loosely(t, err, should.BeNil)
		_, err = s.CreateColumnFamily(ctx, &bttdpb.CreateColumnFamilyRequest{
			Name:           tblName,
			ColumnFamilyId: "fam",
		})
		assert.Loosely(t, err, should.BeNil)

		t.Run("append concatenates onto the newest cell", func(t *ftt.Test) {
			for _, chunk := range []string{"foo", "bar"} {
				res, err := s.ReadModifyWriteRow(ctx, &btpb.ReadModifyWriteRowRequest{
					TableName: tblName,
					RowKey:    []byte("r"),
					Rules: []*btpb.ReadModifyWriteRule{{
						FamilyName:      "fam",
						ColumnQualifier: []byte("col"),
						Rule:            &btpb.ReadModifyWriteRule_AppendValue{AppendValue: []byte(chunk)},
					}},
				})
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, res.Families, should.HaveLength(1))
			}
			row, err := s.ReadModifyWriteRow(ctx, &btpb.ReadModifyWriteRowRequest{
				TableName: tblName,
				RowKey:    []byte("r"),
				Rules: []*btpb.ReadModifyWriteRule{{
					FamilyName:      "fam",
					ColumnQualifier: []byte("col"),
					Rule:            &btpb.ReadModifyWriteRule_AppendValue{AppendValue: []byte("!")},
				}},
			})
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, row.Families[0].Columns[0].Cells[0].Value, should.Match([]byte("foobar!")))
		})

		t.Run("increments are big-endian 64-bit", func(t *ftt.Test) {
			for range 3 {
				_, err := s.ReadModifyWriteRow(ctx, &btpb.ReadModifyWriteRowRequest{
					TableName: tblName,
					RowKey:    []byte("r"),
					Rules: []*btpb.ReadModifyWriteRule{{
						FamilyName:      "fam",
						ColumnQualifier: []byte("n"),
						Rule:            &btpb.ReadModifyWriteRule_IncrementAmount{IncrementAmount: 1},
					}},
				})
				assert.Loosely(t, err, should.BeNil)
			}
			res, err := s.ReadModifyWriteRow(ctx, &btpb.ReadModifyWriteRowRequest{
				TableName: tblName,
				RowKey:    []byte("r"),
				Rules: []*btpb.ReadModifyWriteRule{{
					FamilyName:      "fam",
					ColumnQualifier: []byte("n"),
					Rule:            &btpb.ReadModifyWriteRule_IncrementAmount{IncrementAmount: 0},
				}},
			})
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, res.Families[0].Columns[0].Cells[0].Value,
				should.Match([]byte{0, 0, 0, 0, 0, 0, 0, 3}))
		})

		t.Run("timestamps never move backwards", func(t *ftt.Test) {
			req := &btpb.ReadModifyWriteRowRequest{
				TableName: tblName,
				RowKey:    []byte("r"),
				Rules: []*btpb.ReadModifyWriteRule{{
					FamilyName:      "fam",
					ColumnQualifier: []byte("col"),
					Rule:            &btpb.ReadModifyWriteRule_AppendValue{AppendValue: []byte("x")},
				}},
			}
			res, err := s.ReadModifyWriteRow(ctx, req)
			assert.Loosely(t, err, should.BeNil)
			first := res.Families[0].Columns[0].Cells[0].TimestampMicros

			// A stalled clock still yields a strictly newer timestamp.
			res, err = s.ReadModifyWriteRow(ctx, req)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, res.Families[0].Columns[0].Cells[0].TimestampMicros,
				should.BeGreaterThan(first))
		})

		t.Run("unknown family is rejected", func(t *ftt.Test) {
			_, err := s.ReadModifyWriteRow(ctx, &btpb.ReadModifyWriteRowRequest{
				TableName: tblName,
				RowKey:    []byte("r"),
				Rules: []*btpb.ReadModifyWriteRule{{
					FamilyName:      "nosuch",
					ColumnQualifier: []byte("col"),
					Rule:            &btpb.ReadModifyWriteRule_AppendValue{AppendValue: []byte("x")},
				}},
			})
			assert.Loosely(t, err, should.ErrLike("nosuch"))
		})
	})
}

func TestClockSwap(t *testing.T) {
	t.Parallel()

	ftt.Run("SetClock is safe while writes are in flight", t, func(t *ftt.Test) {
		ctx := context.Background()
		srv, err := NewServer("localhost:0")
		assert.Loosely(t, err, should.BeNil)
		t.Cleanup(srv.Close)

		const clusterName = "projects/p/zones/z/clusters/c"
		const tblName = clusterName + "/tables/t"
		_, err = srv.s.CreateTable(ctx, &bttdpb.CreateTableRequest{Name: clusterName, TableId: "t"})
		assert.Loosely(t, err, should.BeNil)
		_, err = srv.s.CreateColumnFamily(ctx, &bttdpb.CreateColumnFamilyRequest{
			Name:           tblName,
			ColumnFamilyId: "fam",
		})
		assert.Loosely(t, err, should.BeNil)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := int64(1); i <= 100; i++ {
				ts := i * 1000
				srv.SetClock(func() int64 { return ts })
			}
		}()
		var werr error
		go func() {
			defer wg.Done()
			for range 100 {
				_, err := srv.s.MutateRow(ctx, &btpb.MutateRowRequest{
					TableName: tblName,
					RowKey:    []byte("r"),
					Mutations: []*btpb.Mutation{{
						Mutation: &btpb.Mutation_SetCell_{SetCell: &btpb.Mutation_SetCell{
							FamilyName:      "fam",
							ColumnQualifier: []byte("col"),
							TimestampMicros: -1,
							Value:           []byte("v"),
						}},
					}},
				})
				if err != nil && werr == nil {
					werr = err
				}
			}
		}()
		wg.Wait()
		assert.Loosely(t, werr, should.BeNil)
	})
}

func TestMutations(t *testing.T) {
	t.Parallel()

	ftt.Run("With a table, family and GC rule", t, func(t *ftt.Test) {
		ctx := context.Background()
		s := &server{
			clusters: make(map[string]*cluster),
			tables:   make(map[string]*table),
			Clock:    func() int64 { return 5e6 },
		}
		const clusterName = "projects/p/zones/z/clusters/c"
		const tblName = clusterName + "/tables/t"
		_, err := s.CreateTable(ctx, &bttdpb.CreateTableRequest{Name: clusterName, TableId: "t"})
		assert.Loosely(t, err, should.BeNil)
		_, err = s.CreateColumnFamily(ctx, &bttdpb.CreateColumnFamilyRequest{
			Name:           tblName,
			ColumnFamilyId: "fam",
			ColumnFamily:   &bttdpb.ColumnFamily{GcRule: maxVersions(2)},
		})
		assert.Loosely(t, err, should.BeNil)

		setCell := func(ts int64, val string) error {
			_, err := s.MutateRow(ctx, &btpb.MutateRowRequest{
				TableName: tblName,
				RowKey:    []byte("r"),
				Mutations: []*btpb.Mutation{{
					Mutation: &btpb.Mutation_SetCell_{SetCell: &btpb.Mutation_SetCell{
						FamilyName:      "fam",
						ColumnQualifier: []byte("col"),
						TimestampMicros: ts,
						Value:           []byte(val),
					}},
				}},
			})
			return err
		}

		t.Run("GC runs on write", func(t *ftt.Test) {
			for i, val := range []string{"a", "b", "c", "d"} {
				assert.Loosely(t, setCell(int64(i+1)*1000, val), should.BeNil)
			}
			tbl := s.tables[tblName]
			cells := tbl.rows["r"].families["fam"]["col"]
			assert.Loosely(t, cells, should.HaveLength(2))
			assert.Loosely(t, cells[0].value, should.Match([]byte("d")))
		})

		t.Run("server-assigned timestamps use the clock at ms granularity", func(t *ftt.Test) {
			assert.Loosely(t, setCell(-1, "v"), should.BeNil)
			tbl := s.tables[tblName]
			assert.Loosely(t, tbl.rows["r"].families["fam"]["col"][0].ts, should.Equal(int64(5e6)))
		})

		t.Run("sub-millisecond timestamps are rejected", func(t *ftt.Test) {
			assert.Loosely(t, setCell(1001, "v"), should.ErrLike("granularity"))
		})

		t.Run("predicate of a conditional mutation sees the filtered row", func(t *ftt.Test) {
			assert.Loosely(t, setCell(1000, "match-me"), should.BeNil)
			res, err := s.CheckAndMutateRow(ctx, &btpb.CheckAndMutateRowRequest{
				TableName: tblName,
				RowKey:    []byte("r"),
				PredicateFilter: &btpb.RowFilter{
					Filter: &btpb.RowFilter_ValueRegexFilter{ValueRegexFilter: []byte("match-.*")},
				},
				TrueMutations: []*btpb.Mutation{{
					Mutation: &btpb.Mutation_DeleteFromRow_{DeleteFromRow: &btpb.Mutation_DeleteFromRow{}},
				}},
			})
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, res.PredicateMatched, should.BeTrue)
			assert.Loosely(t, s.tables[tblName].rows["r"].empty(), should.BeTrue)
		})
	})
}
