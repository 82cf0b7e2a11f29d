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
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/transport"
	"google.golang.org/genproto/googleapis/longrunning"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"go.chromium.org/luci/common/clock"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"go.chromium.org/bigtable/internal/btcpb"
)

const clusterAdminAddr = "bigtableclusteradmin.googleapis.com:443"

// ClusterAdminClient is a client type for performing admin operations on
// clusters. These operations can be substantially more dangerous than those
// provided by AdminClient.
type ClusterAdminClient struct {
	conn    *grpc.ClientConn
	cClient btcpb.BigtableClusterServiceClient
	lClient longrunning.OperationsClient

	project string
}

// NewClusterAdminClient creates a new ClusterAdminClient for a given project.
func NewClusterAdminClient(ctx context.Context, project string, opts ...option.ClientOption) (*ClusterAdminClient, error) {
	o := []option.ClientOption{
		option.WithEndpoint(clusterAdminAddr),
		option.WithScopes(AdminScope),
	}
	o = append(o, opts...)
	conn, err := transport.DialGRPC(ctx, o...)
	if err != nil {
		return nil, errors.Fmt("dialing cluster admin service: %w", err)
	}
	return &ClusterAdminClient{
		conn:    conn,
		cClient: btcpb.NewBigtableClusterServiceClient(conn),
		lClient: longrunning.NewOperationsClient(conn),
		project: project,
	}, nil
}

// Close closes the ClusterAdminClient.
func (cac *ClusterAdminClient) Close() error {
	return cac.conn.Close()
}

func (cac *ClusterAdminClient) projectPrefix() string {
	return "projects/" + cac.project
}

func (cac *ClusterAdminClient) clusterName(zone, cluster string) string {
	return fmt.Sprintf("projects/%s/zones/%s/clusters/%s", cac.project, zone, cluster)
}

// Zones returns the zone names available for the project, e.g.
// ["europe-west1-a", "us-central1-b"].
//
// It returns an error naming the zone if any zone is down for maintenance,
// since admin operations against it would fail.
func (cac *ClusterAdminClient) Zones(ctx context.Context) ([]string, error) {
	var res *btcpb.ListZonesResponse
	err := unaryCall(ctx, "ListZones", func(ctx context.Context) error {
		req := &btcpb.ListZonesRequest{
			Name: cac.projectPrefix(),
		}
		var err error
		res, err = cac.cClient.ListZones(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	var names []string
	for _, z := range res.Zones {
		if z.Status != btcpb.Zone_OK {
			return nil, errors.Fmt("zone %s not in OK state: %s", z.DisplayName, z.Status)
		}
		names = append(names, z.DisplayName)
	}
	return names, nil
}

// ErrPartiallyUnavailable is returned when some zones of a project could not
// be queried for their clusters.
type ErrPartiallyUnavailable struct {
	Zones []string // zone names that could not be queried
}

func (e ErrPartiallyUnavailable) Error() string {
	return "some zones are unavailable: " + strings.Join(e.Zones, ", ")
}

// ClusterInfo represents information about a cluster.
type ClusterInfo struct {
	Name        string // name of the cluster, e.g. "test-cluster"
	Zone        string // GCP zone of the cluster, e.g. "us-central1-b"
	DisplayName string // display name for UIs
	ServeNodes  int    // number of allocated serve nodes
}

func clusterInfoFromProto(c *btcpb.Cluster) (*ClusterInfo, error) {
	// projects/<project>/zones/<zone>/clusters/<cluster>
	parts := strings.Split(c.Name, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "zones" || parts[4] != "clusters" {
		return nil, errors.Fmt("malformed cluster name %q", c.Name)
	}
	return &ClusterInfo{
		Name:        parts[5],
		Zone:        parts[3],
		DisplayName: c.DisplayName,
		ServeNodes:  int(c.ServeNodes),
	}, nil
}

// Clusters returns a list of clusters in the project.
//
// If zones are unavailable, the returned list is still valid for the
// remaining zones and the error is of type ErrPartiallyUnavailable.
func (cac *ClusterAdminClient) Clusters(ctx context.Context) ([]*ClusterInfo, error) {
	var res *btcpb.ListClustersResponse
	err := unaryCall(ctx, "ListClusters", func(ctx context.Context) error {
		req := &btcpb.ListClustersRequest{
			Name: cac.projectPrefix(),
		}
		var err error
		res, err = cac.cClient.ListClusters(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	var cis []*ClusterInfo
	for _, c := range res.Clusters {
		ci, err := clusterInfoFromProto(c)
		if err != nil {
			return nil, err
		}
		cis = append(cis, ci)
	}
	if len(res.FailedZones) > 0 {
		e := ErrPartiallyUnavailable{}
		for _, z := range res.FailedZones {
			e.Zones = append(e.Zones, z.DisplayName)
		}
		return cis, e
	}
	return cis, nil
}

// GetCluster fetches a cluster in a project.
func (cac *ClusterAdminClient) GetCluster(ctx context.Context, zone, cluster string) (*ClusterInfo, error) {
	var res *btcpb.Cluster
	err := unaryCall(ctx, "GetCluster", func(ctx context.Context) error {
		req := &btcpb.GetClusterRequest{
			Name: cac.clusterName(zone, cluster),
		}
		var err error
		res, err = cac.cClient.GetCluster(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return clusterInfoFromProto(res)
}

// ClusterConfig contains the information necessary to create or update a
// cluster.
type ClusterConfig struct {
	Zone        string // GCP zone of the cluster, e.g. "us-central1-b"
	ClusterID   string // ID of the cluster, e.g. "test-cluster"
	DisplayName string // display name for UIs; defaults to ClusterID
	ServeNodes  int    // number of serve nodes to allocate; at least 3
}

// CreateCluster creates a new cluster in a project.
//
// Cluster creation is a long-running operation on the service side;
// CreateCluster polls it and does not return until the cluster is ready to
// serve (or the operation fails).
func (cac *ClusterAdminClient) CreateCluster(ctx context.Context, conf *ClusterConfig) error {
	displayName := conf.DisplayName
	if displayName == "" {
		displayName = conf.ClusterID
	}
	req := &btcpb.CreateClusterRequest{
		Name:      fmt.Sprintf("projects/%s/zones/%s", cac.project, conf.Zone),
		ClusterId: conf.ClusterID,
		Cluster: &btcpb.Cluster{
			DisplayName: displayName,
			ServeNodes:  int32(conf.ServeNodes),
		},
	}
	res, err := cac.cClient.CreateCluster(ctx, req)
	if err != nil {
		return err
	}
	return cac.waitForOp(ctx, res.CurrentOperation)
}

// UpdateCluster updates the display name and serve node count of a cluster.
//
// Like creation, the resize is a long-running operation; UpdateCluster does
// not return until it completes.
func (cac *ClusterAdminClient) UpdateCluster(ctx context.Context, conf *ClusterConfig) error {
	req := &btcpb.Cluster{
		Name:        cac.clusterName(conf.Zone, conf.ClusterID),
		DisplayName: conf.DisplayName,
		ServeNodes:  int32(conf.ServeNodes),
	}
	res, err := cac.cClient.UpdateCluster(ctx, req)
	if err != nil {
		return err
	}
	return cac.waitForOp(ctx, res.CurrentOperation)
}

// DeleteCluster marks a cluster and all of its tables for permanent deletion
// in 7 days. During that window the cluster can be recovered with
// UndeleteCluster.
func (cac *ClusterAdminClient) DeleteCluster(ctx context.Context, zone, cluster string) error {
	req := &btcpb.DeleteClusterRequest{
		Name: cac.clusterName(zone, cluster),
	}
	_, err := cac.cClient.DeleteCluster(ctx, req)
	return err
}

// UndeleteCluster cancels the scheduled deletion of a cluster and brings it
// back to serving. It does not return until the cluster is serving again.
func (cac *ClusterAdminClient) UndeleteCluster(ctx context.Context, zone, cluster string) error {
	req := &btcpb.UndeleteClusterRequest{
		Name: cac.clusterName(zone, cluster),
	}
	op, err := cac.cClient.UndeleteCluster(ctx, req)
	if err != nil {
		return err
	}
	return cac.waitForOp(ctx, op)
}

// waitForOp polls a long-running operation until it completes.
//
// A nil operation is treated as already complete, since the service omits
// "current_operation" once the work is done.
func (cac *ClusterAdminClient) waitForOp(ctx context.Context, op *longrunning.Operation) error {
	delay := 100 * time.Millisecond
	const maxDelay = 5 * time.Second
	for op != nil && !op.Done {
		logging.Debugf(ctx, "operation %s still running, sleeping %s", op.Name, delay)
		if tr := clock.Sleep(ctx, delay); tr.Err != nil {
			return tr.Err
		}
		if delay *= 2; delay > maxDelay {
			delay = maxDelay
		}
		name := op.Name
		err := unaryCall(ctx, "GetOperation", func(ctx context.Context) error {
			res, err := cac.lClient.GetOperation(ctx, &longrunning.GetOperationRequest{Name: name})
			if err != nil {
				return err
			}
			op = res
			return nil
		})
		if err != nil {
			return err
		}
	}
	if op != nil {
		if s := op.GetError(); s != nil {
			return status.ErrorProto(s)
		}
	}
	return nil
}
