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
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"go.chromium.org/bigtable/bttest"
)

// testEnv is a client stack connected to an in-memory server.
type testEnv struct {
	srv    *bttest.Server
	client *Client
	admin  *AdminClient
	cadmin *ClusterAdminClient
}

func newTestEnv(ctx context.Context, t testing.TB) *testEnv {
	srv, err := bttest.NewServer("localhost:0")
	if err != nil {
		t.Fatalf("starting server: %v", err)
	}
	t.Cleanup(srv.Close)

	conn, err := grpc.NewClient("passthrough:///"+srv.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dialing server: %v", err)
	}
	opt := option.WithGRPCConn(conn)

	client, err := NewClient(ctx, "proj", "zone", "cluster", opt)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	admin, err := NewAdminClient(ctx, "proj", "zone", "cluster", opt)
	if err != nil {
		t.Fatalf("creating admin client: %v", err)
	}
	cadmin, err := NewClusterAdminClient(ctx, "proj", opt)
	if err != nil {
		t.Fatalf("creating cluster admin client: %v", err)
	}
	return &testEnv{srv: srv, client: client, admin: admin, cadmin: cadmin}
}

func TestAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ftt.Run("With a table admin client", t, func(t *ftt.Test) {
		env := newTestEnv(ctx, t)
		adm := env.admin

		t.Run("Table lifecycle", func(t *ftt.Test) {
			assert.Loosely(t, adm.CreateTable(ctx, "mytable"), should.BeNil)
			assert.Loosely(t, adm.CreateTable(ctx, "myothertable"), should.BeNil)

			tables, err := adm.Tables(ctx)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, tables, should.Match([]string{"myothertable", "mytable"}))

			assert.Loosely(t, adm.DeleteTable(ctx, "myothertable"), should.BeNil)
			tables, err = adm.Tables(ctx)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, tables, should.Match([]string{"mytable"}))

			assert.Loosely(t, adm.RenameTable(ctx, "mytable", "newname"), should.BeNil)
			tables, err = adm.Tables(ctx)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, tables, should.Match([]string{"newname"}))
		})

		t.Run("Presplit table", func(t *ftt.Test) {
			err := adm.CreatePresplitTable(ctx, "presplit", []string{"aaa", "bbb"})
			assert.Loosely(t, err, should.BeNil)
			tables, err := adm.Tables(ctx)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, tables, should.Match([]string{"presplit"}))
		})

		t.Run("Column families and GC policies", func(t *ftt.Test) {
			assert.Loosely(t, adm.CreateTable(ctx, "mytable"), should.BeNil)
			assert.Loosely(t, adm.CreateColumnFamily(ctx, "mytable", "cf1"), should.BeNil)
			assert.Loosely(t, adm.CreateColumnFamily(ctx, "mytable", "cf2"), should.BeNil)

			// Duplicate family creation fails.
			assert.Loosely(t, adm.CreateColumnFamily(ctx, "mytable", "cf1"), should.NotBeNil)

			assert.Loosely(t, adm.SetGCPolicy(ctx, "mytable", "cf1", MaxVersionsPolicy(2)), should.BeNil)

			ti, err := adm.TableInfo(ctx, "mytable")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, ti.Families, should.Match([]string{"cf1", "cf2"}))
			assert.Loosely(t, ti.FamilyInfos[0].GCPolicy.String(), should.Equal("versions() > 2"))
			assert.Loosely(t, ti.FamilyInfos[1].GCPolicy, should.BeNil)

			assert.Loosely(t, adm.DeleteColumnFamily(ctx, "mytable", "cf2"), should.BeNil)
			ti, err = adm.TableInfo(ctx, "mytable")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, ti.Families, should.Match([]string{"cf1"}))
		})
	})
}

func TestClusterAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ftt.Run("With a cluster admin client", t, func(t *ftt.Test) {
		env := newTestEnv(ctx, t)
		cadm := env.cadmin

		t.Run("Zones", func(t *ftt.Test) {
			zones, err := cadm.Zones(ctx)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, zones, should.Match([]string{"us-central1-a", "us-central1-b", "europe-west1-a"}))

			t.Run("errors when a zone is down", func(t *ftt.Test) {
				env.srv.SetZoneStatus("us-central1-b", 2) // PLANNED_MAINTENANCE
				_, err := cadm.Zones(ctx)
				assert.Loosely(t, err, should.ErrLike("us-central1-b"))
			})
		})

		t.Run("Cluster lifecycle", func(t *ftt.Test) {
			err := cadm.CreateCluster(ctx, &ClusterConfig{
				Zone:       "us-central1-b",
				ClusterID:  "test-cluster",
				ServeNodes: 3,
			})
			assert.Loosely(t, err, should.BeNil)

			ci, err := cadm.GetCluster(ctx, "us-central1-b", "test-cluster")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, ci.Name, should.Equal("test-cluster"))
			assert.Loosely(t, ci.Zone, should.Equal("us-central1-b"))
			assert.Loosely(t, ci.DisplayName, should.Equal("test-cluster"))
			assert.Loosely(t, ci.ServeNodes, should.Equal(3))

			err = cadm.UpdateCluster(ctx, &ClusterConfig{
				Zone:        "us-central1-b",
				ClusterID:   "test-cluster",
				DisplayName: "A Test Cluster",
				ServeNodes:  5,
			})
			assert.Loosely(t, err, should.BeNil)
			ci, err = cadm.GetCluster(ctx, "us-central1-b", "test-cluster")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, ci.DisplayName, should.Equal("A Test Cluster"))
			assert.Loosely(t, ci.ServeNodes, should.Equal(5))

			cis, err := cadm.Clusters(ctx)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, cis, should.HaveLength(1))

			t.Run("delete and undelete", func(t *ftt.Test) {
				assert.Loosely(t, cadm.DeleteCluster(ctx, "us-central1-b", "test-cluster"), should.BeNil)
				_, err := cadm.GetCluster(ctx, "us-central1-b", "test-cluster")
				assert.Loosely(t, err, should.NotBeNil)

				assert.Loosely(t, cadm.UndeleteCluster(ctx, "us-central1-b", "test-cluster"), should.BeNil)
				ci, err := cadm.GetCluster(ctx, "us-central1-b", "test-cluster")
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, ci.Name, should.Equal("test-cluster"))
			})
		})
	})
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ftt.Run("With a populated table", t, func(t *ftt.Test) {
		env := newTestEnv(ctx, t)
		adm, client := env.admin, env.client

		assert.Loosely(t, adm.CreateTable(ctx, "mytable"), should.BeNil)
		assert.Loosely(t, adm.CreateColumnFamily(ctx, "mytable", "follows"), should.BeNil)

		tbl := client.Open("mytable")

		// Each row lists who that person follows.
		follows := map[string][]string{
			"gwashington": {"jadams"},
			"jadams":      {"gwashington", "tjefferson"},
			"tjefferson":  {"gwashington", "jadams"},
			"wmckinley":   {"tjefferson"},
		}
		for person, followed := range follows {
			mut := NewMutation()
			for _, p := range followed {
				mut.Set("follows", p, 1000, []byte("1"))
			}
			assert.Loosely(t, tbl.Apply(ctx, person, mut), should.BeNil)
		}

		t.Run("ReadRow", func(t *ftt.Test) {
			row, err := tbl.ReadRow(ctx, "jadams")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, row.Key(), should.Equal("jadams"))
			assert.Loosely(t, row["follows"], should.HaveLength(2))
			assert.Loosely(t, row["follows"][0].Column, should.Equal("follows:gwashington"))
			assert.Loosely(t, row["follows"][0].Timestamp, should.Equal(Timestamp(1000)))

			t.Run("of a missing row", func(t *ftt.Test) {
				row, err := tbl.ReadRow(ctx, "nobody")
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, row, should.HaveLength(0))
			})
		})

		t.Run("ReadRows over a range", func(t *ftt.Test) {
			var keys []string
			err := tbl.ReadRows(ctx, NewRange("jadams", "wmckinley"), func(r Row) bool {
				keys = append(keys, r.Key())
				return true
			})
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, keys, should.Match([]string{"jadams", "tjefferson"}))

			t.Run("stopping early", func(t *ftt.Test) {
				keys = nil
				err := tbl.ReadRows(ctx, InfiniteRange(""), func(r Row) bool {
					keys = append(keys, r.Key())
					return false
				})
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, keys, should.Match([]string{"gwashington"}))
			})

			t.Run("with LimitRows", func(t *ftt.Test) {
				keys = nil
				err := tbl.ReadRows(ctx, InfiniteRange(""), func(r Row) bool {
					keys = append(keys, r.Key())
					return true
				}, LimitRows(2))
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, keys, should.Match([]string{"gwashington", "jadams"}))
			})

			t.Run("with a prefix", func(t *ftt.Test) {
				keys = nil
				err := tbl.ReadRows(ctx, PrefixRange("j"), func(r Row) bool {
					keys = append(keys, r.Key())
					return true
				})
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, keys, should.Match([]string{"jadams"}))
			})
		})

		t.Run("ReadRows with filters", func(t *ftt.Test) {
			t.Run("ColumnFilter", func(t *ftt.Test) {
				var mentions []string
				err := tbl.ReadRows(ctx, InfiniteRange(""), func(r Row) bool {
					mentions = append(mentions, r.Key())
					return true
				}, RowFilter(ColumnFilter("j.*")))
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, mentions, should.Match([]string{"gwashington", "tjefferson"}))
			})

			t.Run("StripValueFilter", func(t *ftt.Test) {
				row, err := tbl.ReadRow(ctx, "jadams", RowFilter(StripValueFilter()))
				assert.Loosely(t, err, should.BeNil)
				for _, ri := range row["follows"] {
					assert.Loosely(t, ri.Value, should.HaveLength(0))
				}
			})

			t.Run("chained filter options", func(t *ftt.Test) {
				row, err := tbl.ReadRow(ctx, "tjefferson",
					RowFilter(FamilyFilter("follows")),
					RowFilter(ColumnFilter("gwash.*")))
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, row["follows"], should.HaveLength(1))
				assert.Loosely(t, row["follows"][0].Column, should.Equal("follows:gwashington"))
			})
		})

		t.Run("Conditional mutations", func(t *ftt.Test) {
			// Delete the row only if it follows tjefferson.
			mut := NewMutation()
			mut.DeleteRow()
			cond := NewCondMutation(ColumnFilter("tjefferson"), mut, nil)

			matched := false
			err := tbl.Apply(ctx, "gwashington", cond, GetCondMutationResult(&matched))
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, matched, should.BeFalse)

			err = tbl.Apply(ctx, "wmckinley", cond, GetCondMutationResult(&matched))
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, matched, should.BeTrue)

			row, err := tbl.ReadRow(ctx, "wmckinley")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, row, should.HaveLength(0))
		})

		t.Run("Cell deletes", func(t *ftt.Test) {
			mut := NewMutation()
			mut.DeleteCellsInColumn("follows", "gwashington")
			assert.Loosely(t, tbl.Apply(ctx, "jadams", mut), should.BeNil)

			row, err := tbl.ReadRow(ctx, "jadams")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, row["follows"], should.HaveLength(1))
			assert.Loosely(t, row["follows"][0].Column, should.Equal("follows:tjefferson"))

			mut = NewMutation()
			mut.DeleteCellsInFamily("follows")
			assert.Loosely(t, tbl.Apply(ctx, "jadams", mut), should.BeNil)
			row, err = tbl.ReadRow(ctx, "jadams")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, row, should.HaveLength(0))
		})

		t.Run("Deleted rows do not reappear in scans", func(t *ftt.Test) {
			mut := NewMutation()
			mut.DeleteRow()
			assert.Loosely(t, tbl.Apply(ctx, "jadams", mut), should.BeNil)

			var keys []string
			err := tbl.ReadRows(ctx, InfiniteRange(""), func(r Row) bool {
				keys = append(keys, r.Key())
				return true
			})
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, keys, should.Match([]string{"gwashington", "tjefferson", "wmckinley"}))
		})

		t.Run("Timestamp range deletes", func(t *ftt.Test) {
			mut := NewMutation()
			mut.Set("follows", "x", 1000, []byte("a"))
			mut.Set("follows", "x", 2000, []byte("b"))
			mut.Set("follows", "x", 3000, []byte("c"))
			assert.Loosely(t, tbl.Apply(ctx, "tsrow", mut), should.BeNil)

			mut = NewMutation()
			mut.DeleteTimestampRange("follows", "x", 1000, 3000) // half-open
			assert.Loosely(t, tbl.Apply(ctx, "tsrow", mut), should.BeNil)

			row, err := tbl.ReadRow(ctx, "tsrow")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, row["follows"], should.HaveLength(1))
			assert.Loosely(t, row["follows"][0].Timestamp, should.Equal(Timestamp(3000)))
		})

		t.Run("ApplyReadModifyWrite", func(t *ftt.Test) {
			rmw := NewReadModifyWrite()
			rmw.AppendValue("follows", "wmckinley", []byte("white house"))
			rmw.Increment("follows", "visits", 1)

			row, err := tbl.ApplyReadModifyWrite(ctx, "gwashington", rmw)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, row["follows"], should.HaveLength(2))

			row, err = tbl.ApplyReadModifyWrite(ctx, "gwashington", rmw)
			assert.Loosely(t, err, should.BeNil)
			var visits []byte
			for _, ri := range row["follows"] {
				if ri.Column == "follows:visits" {
					visits = ri.Value
				}
			}
			assert.Loosely(t, visits, should.Match([]byte{0, 0, 0, 0, 0, 0, 0, 2}))
		})

		t.Run("SampleRowKeys", func(t *ftt.Test) {
			keys, err := tbl.SampleRowKeys(ctx)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, len(keys), should.BeGreaterThan(0))
			// The final row key of the table is always included.
			assert.Loosely(t, keys[len(keys)-1], should.Equal("wmckinley"))
		})

		t.Run("Server-side GC on write", func(t *ftt.Test) {
			assert.Loosely(t, adm.SetGCPolicy(ctx, "mytable", "follows", MaxVersionsPolicy(2)), should.BeNil)
			for i := range 5 {
				mut := NewMutation()
				mut.Set("follows", "versioned", Timestamp((i+1)*1000), []byte{byte(i)})
				assert.Loosely(t, tbl.Apply(ctx, "gcrow", mut), should.BeNil)
			}
			row, err := tbl.ReadRow(ctx, "gcrow")
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, row["follows"], should.HaveLength(2))
			assert.Loosely(t, row["follows"][0].Timestamp, should.Equal(Timestamp(5000)))
		})
	})
}

func TestServerTimestamps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ftt.Run("ServerTime uses the server clock", t, func(t *ftt.Test) {
		env := newTestEnv(ctx, t)
		adm, client := env.admin, env.client

		assert.Loosely(t, adm.CreateTable(ctx, "clocked"), should.BeNil)
		assert.Loosely(t, adm.CreateColumnFamily(ctx, "clocked", "cf"), should.BeNil)
		tbl := client.Open("clocked")

		var ts int64 = 1234567890000
		env.srv.SetClock(func() int64 {
			ts += 1000
			return ts
		})

		mut := NewMutation()
		mut.Set("cf", "col", ServerTime, []byte("v"))
		assert.Loosely(t, tbl.Apply(ctx, "r", mut), should.BeNil)

		row, err := tbl.ReadRow(ctx, "r")
		assert.Loosely(t, err, should.BeNil)
		assert.Loosely(t, row["cf"][0].Timestamp, should.Equal(Timestamp(1234567891000)))
	})
}

func ExampleNewClient() {
	ctx := context.Background()
	client, err := NewClient(ctx, "my-project", "us-central1-b", "my-cluster")
	if err != nil {
		// Handle err.
		return
	}
	defer client.Close()

	tbl := client.Open("mytable")
	row, err := tbl.ReadRow(ctx, "com.example/index")
	if err != nil {
		return
	}
	fmt.Println(row.Key())
}
