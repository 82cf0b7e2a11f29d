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
	"sort"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/transport"
	"google.golang.org/grpc"

	"go.chromium.org/luci/common/errors"

	"go.chromium.org/bigtable/internal/bttdpb"
)

const adminAddr = "bigtabletableadmin.googleapis.com:443"

// AdminScope is the OAuth scope for Cloud Bigtable admin operations.
const AdminScope = "https://www.googleapis.com/auth/cloud-bigtable.admin"

// AdminClient is a client type for performing admin operations on the tables
// within a single cluster.
type AdminClient struct {
	conn    *grpc.ClientConn
	tClient bttdpb.BigtableTableServiceClient

	project string
	zone    string
	cluster string
}

// NewAdminClient creates a new AdminClient for a given project, zone and
// cluster.
func NewAdminClient(ctx context.Context, project, zone, cluster string, opts ...option.ClientOption) (*AdminClient, error) {
	o := []option.ClientOption{
		option.WithEndpoint(adminAddr),
		option.WithScopes(AdminScope),
	}
	o = append(o, opts...)
	conn, err := transport.DialGRPC(ctx, o...)
	if err != nil {
		return nil, errors.Fmt("dialing table admin service: %w", err)
	}
	return &AdminClient{
		conn:    conn,
		tClient: bttdpb.NewBigtableTableServiceClient(conn),
		project: project,
		zone:    zone,
		cluster: cluster,
	}, nil
}

// Close closes the AdminClient.
func (ac *AdminClient) Close() error {
	return ac.conn.Close()
}

func (ac *AdminClient) clusterPrefix() string {
	return fmt.Sprintf("projects/%s/zones/%s/clusters/%s", ac.project, ac.zone, ac.cluster)
}

// Tables returns a list of the tables in the cluster.
func (ac *AdminClient) Tables(ctx context.Context) ([]string, error) {
	var names []string
	err := unaryCall(ctx, "ListTables", func(ctx context.Context) error {
		req := &bttdpb.ListTablesRequest{
			Name: ac.clusterPrefix(),
		}
		res, err := ac.tClient.ListTables(ctx, req)
		if err != nil {
			return err
		}
		names = nil
		for _, tbl := range res.Tables {
			names = append(names, strings.TrimPrefix(tbl.Name, ac.clusterPrefix()+"/tables/"))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// CreateTable creates a new table in the cluster.
// This method may return before the table's creation is finished.
func (ac *AdminClient) CreateTable(ctx context.Context, table string) error {
	req := &bttdpb.CreateTableRequest{
		Name:    ac.clusterPrefix(),
		TableId: table,
	}
	_, err := ac.tClient.CreateTable(ctx, req)
	return err
}

// CreatePresplitTable creates a new table in the cluster with the given set
// of initial split keys. Given two split keys, "s1" and "s2", three tablets
// will be created, spanning the key ranges: [, s1), [s1, s2), [s2, ).
// This method may return before the table's creation is finished.
func (ac *AdminClient) CreatePresplitTable(ctx context.Context, table string, splitKeys []string) error {
	req := &bttdpb.CreateTableRequest{
		Name:             ac.clusterPrefix(),
		TableId:          table,
		InitialSplitKeys: splitKeys,
	}
	_, err := ac.tClient.CreateTable(ctx, req)
	return err
}

// DeleteTable deletes a table and all of its data.
func (ac *AdminClient) DeleteTable(ctx context.Context, table string) error {
	req := &bttdpb.DeleteTableRequest{
		Name: ac.clusterPrefix() + "/tables/" + table,
	}
	_, err := ac.tClient.DeleteTable(ctx, req)
	return err
}

// RenameTable renames a table within the same cluster.
func (ac *AdminClient) RenameTable(ctx context.Context, src, dst string) error {
	req := &bttdpb.RenameTableRequest{
		Name:  ac.clusterPrefix() + "/tables/" + src,
		NewId: dst,
	}
	_, err := ac.tClient.RenameTable(ctx, req)
	return err
}

// CreateColumnFamily creates a new column family in a table.
func (ac *AdminClient) CreateColumnFamily(ctx context.Context, table, family string) error {
	req := &bttdpb.CreateColumnFamilyRequest{
		Name:           ac.clusterPrefix() + "/tables/" + table,
		ColumnFamilyId: family,
	}
	_, err := ac.tClient.CreateColumnFamily(ctx, req)
	return err
}

// SetGCPolicy specifies which cells in a column family should be garbage
// collected. GC executes opportunistically in the background; table reads
// may return data matching the GC policy.
func (ac *AdminClient) SetGCPolicy(ctx context.Context, table, family string, policy GCPolicy) error {
	req := &bttdpb.ColumnFamily{
		Name:   ac.clusterPrefix() + "/tables/" + table + "/columnFamilies/" + family,
		GcRule: policy.proto(),
	}
	_, err := ac.tClient.UpdateColumnFamily(ctx, req)
	return err
}

// DeleteColumnFamily deletes a column family in a table and all of its data.
func (ac *AdminClient) DeleteColumnFamily(ctx context.Context, table, family string) error {
	req := &bttdpb.DeleteColumnFamilyRequest{
		Name: ac.clusterPrefix() + "/tables/" + table + "/columnFamilies/" + family,
	}
	_, err := ac.tClient.DeleteColumnFamily(ctx, req)
	return err
}

// TableInfo represents information about a table.
type TableInfo struct {
	// Families lists the column family names, in sorted order.
	Families []string
	// FamilyInfos carries the full per-family configuration, in the same
	// order as Families.
	FamilyInfos []FamilyInfo
}

// FamilyInfo represents information about a column family.
type FamilyInfo struct {
	Name string
	// GCPolicy is the garbage collection policy configured for the family,
	// or nil if the family has none.
	GCPolicy GCPolicy
}

// TableInfo retrieves information about a table.
func (ac *AdminClient) TableInfo(ctx context.Context, table string) (*TableInfo, error) {
	var res *bttdpb.Table
	err := unaryCall(ctx, "GetTable", func(ctx context.Context) error {
		req := &bttdpb.GetTableRequest{
			Name: ac.clusterPrefix() + "/tables/" + table,
		}
		var err error
		res, err = ac.tClient.GetTable(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	ti := &TableInfo{}
	for fam := range res.ColumnFamilies {
		ti.Families = append(ti.Families, fam)
	}
	sort.Strings(ti.Families)
	for _, fam := range ti.Families {
		ti.FamilyInfos = append(ti.FamilyInfos, FamilyInfo{
			Name:     fam,
			GCPolicy: gcPolicyFromProto(res.ColumnFamilies[fam].GetGcRule()),
		})
	}
	return ti, nil
}
