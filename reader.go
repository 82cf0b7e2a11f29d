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
	"context"
	"fmt"
	"io"
	"strconv"

	"go.chromium.org/luci/common/retry"
	"go.chromium.org/luci/common/retry/transient"
	"go.chromium.org/luci/grpc/grpcutil"

	"go.chromium.org/bigtable/internal/btpb"
)

// Row is returned by ReadRows. The map is keyed by column family (the prefix
// of the column name before the colon). The values are the returned ReadItems
// for that column family in the order returned by Read.
type Row map[string][]ReadItem

// Key returns the row's key, or "" if the row is empty.
func (r Row) Key() string {
	for _, items := range r {
		if len(items) > 0 {
			return items[0].Row
		}
	}
	return ""
}

// A ReadItem is returned by Read. A ReadItem contains data from a specific
// row and column.
type ReadItem struct {
	Row, Column string
	Timestamp   Timestamp
	Value       []byte
}

// ReadRows reads rows from a table in the given range, calling f on each row.
// If f returns false, the stream is shut down and ReadRows returns.
// f owns its argument, and f is called serially in row key order.
//
// By default, the yielded rows will contain all values in all cells.
// Use RowFilter to limit the cells returned, and LimitRows to limit the
// number of rows returned.
//
// Reads interrupted by a transient stream failure resume from just after the
// last row delivered to f.
func (t *Table) ReadRows(ctx context.Context, arg RowRange, f func(Row) bool, opts ...ReadOption) error {
	var prevRowKey string
	var rowsRead int64
	return retry.Retry(ctx, transient.Only(retry.Default), func() error {
		rng := arg
		if prevRowKey != "" {
			rng = rng.retainRowsAfter(prevRowKey)
			if !rng.valid() {
				// The range was fully delivered before the stream broke.
				return nil
			}
		}

		req := &btpb.ReadRowsRequest{
			TableName: t.table,
			Target:    &btpb.ReadRowsRequest_RowRange{RowRange: rng.proto()},
		}
		for _, opt := range opts {
			opt.set(req)
		}
		if req.NumRowsLimit > 0 {
			if req.NumRowsLimit <= rowsRead {
				return nil
			}
			req.NumRowsLimit -= rowsRead
		}

		ctx, cancel := context.WithCancel(ctx) // for aborting the stream
		defer cancel()

		stream, err := t.c.client.ReadRows(ctx, req)
		if err != nil {
			return grpcutil.WrapIfTransient(err)
		}
		cr := newChunkReader()
		for {
			res, err := stream.Recv()
			if err == io.EOF {
				break
			}
			if err != nil {
				return grpcutil.WrapIfTransient(err)
			}
			for _, row := range cr.process(res) {
				// An empty committed row has no key; it must not rewind the
				// resume point.
				if key := row.Key(); key != "" {
					prevRowKey = key
				}
				rowsRead++
				if !f(row) {
					// Cancel and drain the stream to release its resources.
					cancel()
					for {
						if _, err := stream.Recv(); err != nil {
							// The stream has ended. We don't care about its
							// error since our call is done.
							break
						}
					}
					return nil
				}
			}
		}
		return nil
	}, retry.LogCallback(ctx, "ReadRows"))
}

// ReadRow is a convenience implementation of a single-row reader.
// A missing row will return a zero-length map and a nil error.
func (t *Table) ReadRow(ctx context.Context, row string, opts ...ReadOption) (Row, error) {
	var r Row
	err := t.ReadRows(ctx, SingleRow(row), func(rr Row) bool {
		r = rr
		return true
	}, opts...)
	return r, err
}

// chunkReader accumulates the chunks of the v1 read protocol into rows.
//
// A row's cells may span multiple responses. A commit_row chunk seals the
// row named by the response's row key; a reset_row chunk discards everything
// accumulated for it so far. When row interleaving is permitted chunks for
// different rows may arrive interleaved, hence the map.
type chunkReader struct {
	partial map[string]Row
}

func newChunkReader() *chunkReader {
	return &chunkReader{partial: make(map[string]Row)}
}

// process consumes a single stream response and returns the rows it
// completed, in the order they were committed.
func (cr *chunkReader) process(res *btpb.ReadRowsResponse) []Row {
	key := string(res.RowKey)
	var done []Row
	for _, chunk := range res.Chunks {
		switch c := chunk.Chunk.(type) {
		case *btpb.ReadRowsResponse_Chunk_ResetRow:
			delete(cr.partial, key)
		case *btpb.ReadRowsResponse_Chunk_CommitRow:
			row := cr.partial[key]
			delete(cr.partial, key)
			if row == nil {
				// A row with no cells (e.g. everything stripped by a filter)
				// still commits.
				row = make(Row)
			}
			done = append(done, row)
		case *btpb.ReadRowsResponse_Chunk_RowContents:
			row := cr.partial[key]
			if row == nil {
				row = make(Row)
				cr.partial[key] = row
			}
			decodeFamilyProto(row, key, c.RowContents)
		}
	}
	return done
}

// decodeFamilyProto adds the cell data from f to the given row.
func decodeFamilyProto(r Row, row string, f *btpb.Family) {
	fam := f.Name // does not have colon
	for _, col := range f.Columns {
		for _, cell := range col.Cells {
			ri := ReadItem{
				Row:       row,
				Column:    fam + ":" + string(col.Qualifier),
				Timestamp: Timestamp(cell.TimestampMicros),
				Value:     cell.Value,
			}
			r[fam] = append(r[fam], ri)
		}
	}
}

// A RowRange is used to describe the rows to be read.
// A RowRange is a half-open interval [Start, Limit) encompassing
// all the rows with keys at least as large as Start, and less than Limit.
// (Bigtable string comparison is the same as Go's.)
// A RowRange can be unbounded, encompassing all keys at least as large
// as Start.
type RowRange struct {
	start string
	limit string
}

// NewRange returns the new RowRange [begin, end).
func NewRange(begin, end string) RowRange {
	return RowRange{
		start: begin,
		limit: end,
	}
}

// Unbounded tests whether a RowRange is unbounded.
func (r RowRange) Unbounded() bool {
	return r.limit == ""
}

// Contains says whether the RowRange contains the key.
func (r RowRange) Contains(row string) bool {
	return r.start <= row && (r.limit == "" || r.limit > row)
}

// String provides a printable description of a RowRange.
func (r RowRange) String() string {
	a := strconv.Quote(r.start)
	if r.Unbounded() {
		return fmt.Sprintf("[%s,∞)", a)
	}
	return fmt.Sprintf("[%s,%q)", a, r.limit)
}

func (r RowRange) proto() *btpb.RowRange {
	return &btpb.RowRange{
		StartKey: []byte(r.start),
		EndKey:   []byte(r.limit),
	}
}

// valid reports whether the RowRange is non-empty.
func (r RowRange) valid() bool {
	return r.Unbounded() || r.start < r.limit
}

// retainRowsAfter returns a new RowRange that retains only the rows of r
// strictly after the given key.
func (r RowRange) retainRowsAfter(row string) RowRange {
	if start := row + "\x00"; start > r.start {
		r.start = start
	}
	return r
}

// SingleRow returns a RowRange for reading a single row.
func SingleRow(row string) RowRange {
	return RowRange{
		start: row,
		limit: row + "\x00",
	}
}

// PrefixRange returns a RowRange consisting of all keys starting with the
// prefix.
func PrefixRange(prefix string) RowRange {
	return RowRange{
		start: prefix,
		limit: prefixSuccessor(prefix),
	}
}

// InfiniteRange returns the RowRange consisting of all keys at least as
// large as start.
func InfiniteRange(start string) RowRange {
	return RowRange{
		start: start,
		limit: "",
	}
}

// prefixSuccessor returns the lexically smallest string greater than the
// prefix, if it exists, or "" otherwise. In either case, it is the string
// found by removing trailing \xff bytes from prefix and incrementing the last
// byte.
func prefixSuccessor(prefix string) string {
	if prefix == "" {
		return "" // infinite range
	}
	n := len(prefix)
	for n--; n >= 0 && prefix[n] == '\xff'; n-- {
	}
	if n == -1 {
		return ""
	}
	ans := []byte(prefix[:n])
	ans = append(ans, prefix[n]+1)
	return string(ans)
}

// A ReadOption is an optional argument to ReadRows.
type ReadOption interface {
	set(req *btpb.ReadRowsRequest)
}

// RowFilter returns a ReadOption that applies f to the contents of read rows.
func RowFilter(f Filter) ReadOption {
	return rowFilter{f}
}

type rowFilter struct {
	f Filter
}

func (rf rowFilter) set(req *btpb.ReadRowsRequest) {
	if req.Filter == nil {
		req.Filter = rf.f.proto()
		return
	}
	// Multiple filter options compose as a chain.
	prev := req.Filter
	if ch := prev.GetChain(); ch != nil {
		ch.Filters = append(ch.Filters, rf.f.proto())
		return
	}
	req.Filter = &btpb.RowFilter{
		Filter: &btpb.RowFilter_Chain_{Chain: &btpb.RowFilter_Chain{
			Filters: []*btpb.RowFilter{prev, rf.f.proto()},
		}},
	}
}

// LimitRows returns a ReadOption that will limit the number of rows to be
// read.
func LimitRows(limit int64) ReadOption {
	return limitRows{limit}
}

type limitRows struct {
	limit int64
}

func (lr limitRows) set(req *btpb.ReadRowsRequest) {
	req.NumRowsLimit = lr.limit
}

// SampleRowKeys returns a sample of row keys in the table. The returned row
// keys will delimit contiguous sections of the table of approximately equal
// size, which can be used to break up the data for distributed tasks like
// mapreduces.
func (t *Table) SampleRowKeys(ctx context.Context) ([]string, error) {
	var sampledRowKeys []string
	err := unaryCall(ctx, "SampleRowKeys", func(ctx context.Context) error {
		sampledRowKeys = nil
		req := &btpb.SampleRowKeysRequest{
			TableName: t.table,
		}
		ctx, cancel := context.WithCancel(ctx) // for aborting the stream
		defer cancel()

		stream, err := t.c.client.SampleRowKeys(ctx, req)
		if err != nil {
			return err
		}
		for {
			res, err := stream.Recv()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}

			key := string(res.RowKey)
			if key == "" {
				continue
			}
			sampledRowKeys = append(sampledRowKeys, key)
		}
		return nil
	})
	return sampledRowKeys, err
}
