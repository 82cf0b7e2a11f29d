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
	"net"
	"sync"
	"testing"

	emptypb "github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"go.chromium.org/bigtable/internal/btpb"
)

func contentsChunk(fam string, qual string, ts int64, value string) *btpb.ReadRowsResponse_Chunk {
	return &btpb.ReadRowsResponse_Chunk{
		Chunk: &btpb.ReadRowsResponse_Chunk_RowContents{RowContents: &btpb.Family{
			Name: fam,
			Columns: []*btpb.Column{{
				Qualifier: []byte(qual),
				Cells:     []*btpb.Cell{{TimestampMicros: ts, Value: []byte(value)}},
			}},
		}},
	}
}

func commitChunk() *btpb.ReadRowsResponse_Chunk {
	return &btpb.ReadRowsResponse_Chunk{
		Chunk: &btpb.ReadRowsResponse_Chunk_CommitRow{CommitRow: true},
	}
}

func resetChunk() *btpb.ReadRowsResponse_Chunk {
	return &btpb.ReadRowsResponse_Chunk{
		Chunk: &btpb.ReadRowsResponse_Chunk_ResetRow{ResetRow: true},
	}
}

func TestChunkReader(t *testing.T) {
	t.Parallel()

	ftt.Run("With a chunk reader", t, func(t *ftt.Test) {
		cr := newChunkReader()

		t.Run("single response with contents and commit", func(t *ftt.Test) {
			rows := cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("r1"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{
					contentsChunk("fam", "col", 1000, "val"),
					commitChunk(),
				},
			})
			assert.Loosely(t, rows, should.HaveLength(1))
			assert.Loosely(t, rows[0].Key(), should.Equal("r1"))
			assert.Loosely(t, rows[0]["fam"], should.Match([]ReadItem{{
				Row:       "r1",
				Column:    "fam:col",
				Timestamp: 1000,
				Value:     []byte("val"),
			}}))
		})

		t.Run("row spanning multiple responses", func(t *ftt.Test) {
			rows := cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("r1"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{contentsChunk("fam", "a", 1, "x")},
			})
			assert.Loosely(t, rows, should.HaveLength(0))

			rows = cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("r1"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{
					contentsChunk("fam", "b", 2, "y"),
					commitChunk(),
				},
			})
			assert.Loosely(t, rows, should.HaveLength(1))
			assert.Loosely(t, rows[0]["fam"], should.HaveLength(2))
		})

		t.Run("reset discards accumulated cells", func(t *ftt.Test) {
			cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("r1"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{contentsChunk("fam", "a", 1, "stale")},
			})
			rows := cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("r1"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{
					resetChunk(),
					contentsChunk("fam", "a", 2, "fresh"),
					commitChunk(),
				},
			})
			assert.Loosely(t, rows, should.HaveLength(1))
			assert.Loosely(t, rows[0]["fam"], should.HaveLength(1))
			assert.Loosely(t, rows[0]["fam"][0].Value, should.Match([]byte("fresh")))
		})

		t.Run("commit of an empty row still yields the row", func(t *ftt.Test) {
			rows := cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("r1"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{commitChunk()},
			})
			assert.Loosely(t, rows, should.HaveLength(1))
			assert.Loosely(t, rows[0], should.HaveLength(0))
		})

		t.Run("interleaved rows commit independently", func(t *ftt.Test) {
			cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("a"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{contentsChunk("fam", "c", 1, "1")},
			})
			cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("b"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{contentsChunk("fam", "c", 1, "2")},
			})
			rows := cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("b"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{commitChunk()},
			})
			assert.Loosely(t, rows, should.HaveLength(1))
			assert.Loosely(t, rows[0].Key(), should.Equal("b"))

			rows = cr.process(&btpb.ReadRowsResponse{
				RowKey: []byte("a"),
				Chunks: []*btpb.ReadRowsResponse_Chunk{commitChunk()},
			})
			assert.Loosely(t, rows, should.HaveLength(1))
			assert.Loosely(t, rows[0].Key(), should.Equal("a"))
		})
	})
}

func TestRowRange(t *testing.T) {
	t.Parallel()

	ftt.Run("Constructors and predicates", t, func(t *ftt.Test) {
		r := NewRange("b", "e")
		assert.Loosely(t, r.valid(), should.BeTrue)
		assert.Loosely(t, r.Unbounded(), should.BeFalse)
		assert.Loosely(t, r.Contains("b"), should.BeTrue)
		assert.Loosely(t, r.Contains("d"), should.BeTrue)
		assert.Loosely(t, r.Contains("e"), should.BeFalse)

		inf := InfiniteRange("x")
		assert.Loosely(t, inf.Unbounded(), should.BeTrue)
		assert.Loosely(t, inf.Contains("zzzzz"), should.BeTrue)
		assert.Loosely(t, inf.Contains("a"), should.BeFalse)

		single := SingleRow("row1")
		assert.Loosely(t, single.Contains("row1"), should.BeTrue)
		assert.Loosely(t, single.Contains("row1\x00"), should.BeFalse)
		assert.Loosely(t, single.Contains("row10"), should.BeFalse)
	})

	ftt.Run("PrefixRange", t, func(t *ftt.Test) {
		r := PrefixRange("abc")
		assert.Loosely(t, r.Contains("abc"), should.BeTrue)
		assert.Loosely(t, r.Contains("abcd"), should.BeTrue)
		assert.Loosely(t, r.Contains("abd"), should.BeFalse)
		assert.Loosely(t, r.Contains("ab"), should.BeFalse)
	})

	ftt.Run("prefixSuccessor", t, func(t *ftt.Test) {
		assert.Loosely(t, prefixSuccessor(""), should.BeEmpty)
		assert.Loosely(t, prefixSuccessor("a"), should.Equal("b"))
		assert.Loosely(t, prefixSuccessor("ab"), should.Equal("ac"))
		assert.Loosely(t, prefixSuccessor("a\xff\xff"), should.Equal("b"))
		assert.Loosely(t, prefixSuccessor("\xff\xff"), should.BeEmpty)
	})

	ftt.Run("retainRowsAfter", t, func(t *ftt.Test) {
		r := NewRange("a", "z").retainRowsAfter("m")
		assert.Loosely(t, r.Contains("m"), should.BeFalse)
		assert.Loosely(t, r.Contains("m\x00"), should.BeTrue)
		assert.Loosely(t, r.Contains("n"), should.BeTrue)

		t.Run("never rewinds the start", func(t *ftt.Test) {
			r := NewRange("m", "z").retainRowsAfter("a")
			assert.Loosely(t, r.Contains("m"), should.BeTrue)
		})

		t.Run("can empty the range", func(t *ftt.Test) {
			r := NewRange("a", "b").retainRowsAfter("b")
			assert.Loosely(t, r.valid(), should.BeFalse)
		})
	})
}

// flakyReadServer serves ReadRows from a canned script. The first stream
// delivers row "a" and then an empty committed row before failing with a
// transient error; every later stream delivers row "c".
type flakyReadServer struct {
	mu   sync.Mutex
	reqs []*btpb.ReadRowsRequest
}

func (s *flakyReadServer) ReadRows(req *btpb.ReadRowsRequest, stream btpb.BigtableService_ReadRowsServer) error {
	s.mu.Lock()
	s.reqs = append(s.reqs, req)
	call := len(s.reqs)
	s.mu.Unlock()

	if call == 1 {
		if err := stream.Send(&btpb.ReadRowsResponse{
			RowKey: []byte("a"),
			Chunks: []*btpb.ReadRowsResponse_Chunk{contentsChunk("fam", "col", 1000, "va"), commitChunk()},
		}); err != nil {
			return err
		}
		// A row whose cells were all stripped still commits, with no key
		// recoverable from its contents.
		if err := stream.Send(&btpb.ReadRowsResponse{
			RowKey: []byte("b"),
			Chunks: []*btpb.ReadRowsResponse_Chunk{commitChunk()},
		}); err != nil {
			return err
		}
		return status.Errorf(codes.Unavailable, "stream broken")
	}
	return stream.Send(&btpb.ReadRowsResponse{
		RowKey: []byte("c"),
		Chunks: []*btpb.ReadRowsResponse_Chunk{contentsChunk("fam", "col", 2000, "vc"), commitChunk()},
	})
}

func (s *flakyReadServer) SampleRowKeys(*btpb.SampleRowKeysRequest, btpb.BigtableService_SampleRowKeysServer) error {
	return status.Errorf(codes.Unimplemented, "SampleRowKeys is unimplemented")
}

func (s *flakyReadServer) MutateRow(context.Context, *btpb.MutateRowRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "MutateRow is unimplemented")
}

func (s *flakyReadServer) CheckAndMutateRow(context.Context, *btpb.CheckAndMutateRowRequest) (*btpb.CheckAndMutateRowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "CheckAndMutateRow is unimplemented")
}

func (s *flakyReadServer) ReadModifyWriteRow(context.Context, *btpb.ReadModifyWriteRowRequest) (*btpb.Row, error) {
	return nil, status.Errorf(codes.Unimplemented, "ReadModifyWriteRow is unimplemented")
}

func TestReadRowsResume(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ftt.Run("A broken stream resumes after the last keyed row", t, func(t *ftt.Test) {
		srv := &flakyReadServer{}
		l, err := net.Listen("tcp", "localhost:0")
		assert.Loosely(t, err, should.BeNil)
		gsrv := grpc.NewServer()
		btpb.RegisterBigtableServiceServer(gsrv, srv)
		go gsrv.Serve(l)
		t.Cleanup(gsrv.Stop)

		conn, err := grpc.NewClient("passthrough:///"+l.Addr().String(),
			grpc.WithTransportCredentials(insecure.NewCredentials()))
		assert.Loosely(t, err, should.BeNil)
		client, err := NewClient(ctx, "proj", "zone", "cluster", option.WithGRPCConn(conn))
		assert.Loosely(t, err, should.BeNil)
		t.Cleanup(func() { client.Close() })

		var keys []string
		err = client.Open("tbl").ReadRows(ctx, InfiniteRange(""), func(r Row) bool {
			if key := r.Key(); key != "" {
				keys = append(keys, key)
			}
			return true
		})
		assert.Loosely(t, err, should.BeNil)
		assert.Loosely(t, keys, should.Match([]string{"a", "c"}))

		// The retry must pick up just after row "a" even though the empty row
		// was committed later in the broken stream.
		srv.mu.Lock()
		defer srv.mu.Unlock()
		assert.Loosely(t, srv.reqs, should.HaveLength(2))
		assert.Loosely(t, srv.reqs[1].GetRowRange().GetStartKey(), should.Match([]byte("a\x00")))
	})
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	ftt.Run("Timestamp conversions round trip", t, func(t *ftt.Test) {
		ts := Timestamp(1234567890123456)
		assert.Loosely(t, Time(ts.Time()), should.Equal(ts))
		assert.Loosely(t, Now(), should.BeGreaterThan(Timestamp(0)))
	})
}
