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

// Package bttest contains a fake Bigtable v1 server for use in testing.
//
// To use a Server, create it, and then connect to it with no security:
//
//	srv, err := bttest.NewServer("localhost:0")
//	...
//	conn, err := grpc.NewClient("passthrough:///"+srv.Addr,
//	  grpc.WithTransportCredentials(insecure.NewCredentials()))
//	...
//	client, err := bigtable.NewClient(ctx, proj, zone, cluster,
//	  option.WithGRPCConn(conn))
//	...
package bttest

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	emptypb "github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/genproto/googleapis/longrunning"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.chromium.org/bigtable/internal/btcpb"
	"go.chromium.org/bigtable/internal/btpb"
	"go.chromium.org/bigtable/internal/bttdpb"
)

// Server is an in-memory Cloud Bigtable fake. It serves all three v1
// services (data, table admin, cluster admin) on a single port.
//
// It is unauthenticated, and only a rough approximation of the real service.
type Server struct {
	Addr string

	l   net.Listener
	srv *grpc.Server
	s   *server
}

// server is the real implementation of the fake.
// It is a separate and unexported type so the API won't be cluttered with
// methods that are only relevant to the fake's implementation.
type server struct {
	mu       sync.Mutex
	zones    []*btcpb.Zone
	clusters map[string]*cluster // keyed by cluster name
	tables   map[string]*table   // keyed by fully qualified name

	// Clock returns the current timestamp in microseconds. Tests may
	// replace it before issuing requests.
	Clock func() int64
}

type cluster struct {
	proto   *btcpb.Cluster
	deleted bool
}

// defaultZones are the zones served by a fresh Server.
var defaultZones = []string{"us-central1-a", "us-central1-b", "europe-west1-a"}

// NewServer creates a new Server. The Server will be listening for gRPC
// connections, without TLS, on the provided address. The resolved address is
// named by the Addr field.
func NewServer(laddr string, opt ...grpc.ServerOption) (*Server, error) {
	l, err := net.Listen("tcp", laddr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Addr: l.Addr().String(),
		l:    l,
		srv:  grpc.NewServer(opt...),
		s: &server{
			clusters: make(map[string]*cluster),
			tables:   make(map[string]*table),
			Clock: func() int64 {
				return time.Now().UnixNano() / 1e3
			},
		},
	}
	for _, z := range defaultZones {
		s.s.zones = append(s.s.zones, &btcpb.Zone{
			Name:        "zones/" + z, // project prefix filled in per request
			DisplayName: z,
			Status:      btcpb.Zone_OK,
		})
	}
	btpb.RegisterBigtableServiceServer(s.srv, s.s)
	bttdpb.RegisterBigtableTableServiceServer(s.srv, s.s)
	btcpb.RegisterBigtableClusterServiceServer(s.srv, s.s)
	longrunning.RegisterOperationsServer(s.srv, s.s)

	go s.srv.Serve(s.l)

	return s, nil
}

// Close shuts down the server.
func (s *Server) Close() {
	s.srv.Stop()
	s.l.Close()
}

//////////////////////////////////////////////////
// Cluster admin service.

func (s *server) ListZones(ctx context.Context, req *btcpb.ListZonesRequest) (*btcpb.ListZonesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &btcpb.ListZonesResponse{}
	for _, z := range s.zones {
		res.Zones = append(res.Zones, &btcpb.Zone{
			Name:        req.Name + "/" + z.Name,
			DisplayName: z.DisplayName,
			Status:      z.Status,
		})
	}
	return res, nil
}

// SetClock replaces the server's clock, used for server-side timestamps and
// age-based GC. The clock returns microseconds since the Unix epoch.
func (s *Server) SetClock(f func() int64) {
	s.s.mu.Lock()
	defer s.s.mu.Unlock()
	s.s.Clock = f
}

// clock snapshots the clock function under the server lock, so SetClock may
// be called while requests are in flight.
func (s *server) clock() func() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Clock
}

// SetZoneStatus changes the advertised status of a zone. Unknown zone names
// are ignored.
func (s *Server) SetZoneStatus(zone string, st btcpb.Zone_Status) {
	s.s.mu.Lock()
	defer s.s.mu.Unlock()
	for _, z := range s.s.zones {
		if z.DisplayName == zone {
			z.Status = st
		}
	}
}

func (s *server) GetCluster(ctx context.Context, req *btcpb.GetClusterRequest) (*btcpb.Cluster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.clusters[req.Name]
	if c == nil || c.deleted {
		return nil, status.Errorf(codes.NotFound, "cluster %q not found", req.Name)
	}
	return c.proto, nil
}

func (s *server) ListClusters(ctx context.Context, req *btcpb.ListClustersRequest) (*btcpb.ListClustersResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &btcpb.ListClustersResponse{}
	var names []string
	for name := range s.clusters {
		if strings.HasPrefix(name, req.Name+"/") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if c := s.clusters[name]; !c.deleted {
			res.Clusters = append(res.Clusters, c.proto)
		}
	}
	for _, z := range s.zones {
		if z.Status != btcpb.Zone_OK {
			res.FailedZones = append(res.FailedZones, z)
		}
	}
	return res, nil
}

// doneOp returns a long-running operation that has already completed.
// The fake does everything synchronously, so every operation it hands out
// is in this state.
func doneOp(name string) *longrunning.Operation {
	return &longrunning.Operation{
		Name: name + "/operations/0",
		Done: true,
	}
}

func (s *server) CreateCluster(ctx context.Context, req *btcpb.CreateClusterRequest) (*btcpb.Cluster, error) {
	if req.ClusterId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "cluster id must be provided")
	}
	name := req.Name + "/clusters/" + req.ClusterId
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.clusters[name]; c != nil && !c.deleted {
		return nil, status.Errorf(codes.AlreadyExists, "cluster %q already exists", name)
	}
	cp := &btcpb.Cluster{
		Name:             name,
		DisplayName:      req.GetCluster().GetDisplayName(),
		ServeNodes:       req.GetCluster().GetServeNodes(),
		CurrentOperation: doneOp(name),
	}
	s.clusters[name] = &cluster{proto: cp}
	return cp, nil
}

func (s *server) UpdateCluster(ctx context.Context, req *btcpb.Cluster) (*btcpb.Cluster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.clusters[req.Name]
	if c == nil || c.deleted {
		return nil, status.Errorf(codes.NotFound, "cluster %q not found", req.Name)
	}
	if req.DisplayName != "" {
		c.proto.DisplayName = req.DisplayName
	}
	if req.ServeNodes > 0 {
		c.proto.ServeNodes = req.ServeNodes
	}
	c.proto.CurrentOperation = doneOp(req.Name)
	return c.proto, nil
}

func (s *server) DeleteCluster(ctx context.Context, req *btcpb.DeleteClusterRequest) (*emptypb.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.clusters[req.Name]
	if c == nil || c.deleted {
		return nil, status.Errorf(codes.NotFound, "cluster %q not found", req.Name)
	}
	c.deleted = true
	return &emptypb.Empty{}, nil
}

func (s *server) UndeleteCluster(ctx context.Context, req *btcpb.UndeleteClusterRequest) (*longrunning.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.clusters[req.Name]
	if c == nil {
		return nil, status.Errorf(codes.NotFound, "cluster %q not found", req.Name)
	}
	if !c.deleted {
		return nil, status.Errorf(codes.FailedPrecondition, "cluster %q is not scheduled for deletion", req.Name)
	}
	c.deleted = false
	return doneOp(req.Name), nil
}

//////////////////////////////////////////////////
// Long-running operations service.

// GetOperation reports every operation as done; the fake performs all
// cluster work synchronously.
func (s *server) GetOperation(ctx context.Context, req *longrunning.GetOperationRequest) (*longrunning.Operation, error) {
	return &longrunning.Operation{Name: req.Name, Done: true}, nil
}

func (s *server) ListOperations(ctx context.Context, req *longrunning.ListOperationsRequest) (*longrunning.ListOperationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "ListOperations is unimplemented")
}

func (s *server) CancelOperation(ctx context.Context, req *longrunning.CancelOperationRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "CancelOperation is unimplemented")
}

func (s *server) DeleteOperation(ctx context.Context, req *longrunning.DeleteOperationRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "DeleteOperation is unimplemented")
}

func (s *server) WaitOperation(ctx context.Context, req *longrunning.WaitOperationRequest) (*longrunning.Operation, error) {
	return nil, status.Errorf(codes.Unimplemented, "WaitOperation is unimplemented")
}

//////////////////////////////////////////////////
// Table admin service.

func (s *server) CreateTable(ctx context.Context, req *bttdpb.CreateTableRequest) (*bttdpb.Table, error) {
	name := req.Name + "/tables/" + req.TableId
	s.mu.Lock()
	if _, ok := s.tables[name]; ok {
		s.mu.Unlock()
		return nil, status.Errorf(codes.AlreadyExists, "table %q already exists", name)
	}
	s.tables[name] = newTable()
	s.mu.Unlock()

	return &bttdpb.Table{Name: name}, nil
}

func (s *server) ListTables(ctx context.Context, req *bttdpb.ListTablesRequest) (*bttdpb.ListTablesResponse, error) {
	res := &bttdpb.ListTablesResponse{}
	prefix := req.Name + "/tables/"

	s.mu.Lock()
	for tbl := range s.tables {
		if strings.HasPrefix(tbl, prefix) {
			res.Tables = append(res.Tables, &bttdpb.Table{Name: tbl})
		}
	}
	s.mu.Unlock()

	sort.Slice(res.Tables, func(i, j int) bool { return res.Tables[i].Name < res.Tables[j].Name })
	return res, nil
}

func (s *server) GetTable(ctx context.Context, req *bttdpb.GetTableRequest) (*bttdpb.Table, error) {
	tbl, err := s.lookupTable(req.Name)
	if err != nil {
		return nil, err
	}

	tbl.mu.RLock()
	defer tbl.mu.RUnlock()
	fams := make(map[string]*bttdpb.ColumnFamily)
	for fam, cf := range tbl.families {
		fams[fam] = &bttdpb.ColumnFamily{
			Name:   req.Name + "/columnFamilies/" + fam,
			GcRule: cf.gcRule,
		}
	}
	return &bttdpb.Table{
		Name:           req.Name,
		ColumnFamilies: fams,
	}, nil
}

func (s *server) DeleteTable(ctx context.Context, req *bttdpb.DeleteTableRequest) (*emptypb.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[req.Name]; !ok {
		return nil, status.Errorf(codes.NotFound, "table %q not found", req.Name)
	}
	delete(s.tables, req.Name)
	return &emptypb.Empty{}, nil
}

func (s *server) RenameTable(ctx context.Context, req *bttdpb.RenameTableRequest) (*emptypb.Empty, error) {
	// <cluster>/tables/<old> -> <cluster>/tables/<new>
	i := strings.LastIndex(req.Name, "/tables/")
	if i < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "malformed table name %q", req.Name)
	}
	newName := req.Name[:i] + "/tables/" + req.NewId

	s.mu.Lock()
	defer s.mu.Unlock()
	tbl, ok := s.tables[req.Name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "table %q not found", req.Name)
	}
	if _, ok := s.tables[newName]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "table %q already exists", newName)
	}
	s.tables[newName] = tbl
	delete(s.tables, req.Name)
	return &emptypb.Empty{}, nil
}

func (s *server) CreateColumnFamily(ctx context.Context, req *bttdpb.CreateColumnFamilyRequest) (*bttdpb.ColumnFamily, error) {
	tbl, err := s.lookupTable(req.Name)
	if err != nil {
		return nil, err
	}

	// Check it is unique and record it.
	fam := req.ColumnFamilyId
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	if _, ok := tbl.families[fam]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "family %q already exists", fam)
	}
	tbl.families[fam] = &columnFamily{gcRule: req.GetColumnFamily().GetGcRule()}
	return &bttdpb.ColumnFamily{
		Name:   req.Name + "/columnFamilies/" + fam,
		GcRule: tbl.families[fam].gcRule,
	}, nil
}

func (s *server) UpdateColumnFamily(ctx context.Context, req *bttdpb.ColumnFamily) (*bttdpb.ColumnFamily, error) {
	// <table>/columnFamilies/<family>
	i := strings.LastIndex(req.Name, "/columnFamilies/")
	if i < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "malformed family name %q", req.Name)
	}
	tblName, fam := req.Name[:i], req.Name[i+len("/columnFamilies/"):]

	tbl, err := s.lookupTable(tblName)
	if err != nil {
		return nil, err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	cf, ok := tbl.families[fam]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "family %q not found", fam)
	}
	cf.gcRule = req.GcRule
	return &bttdpb.ColumnFamily{Name: req.Name, GcRule: cf.gcRule}, nil
}

func (s *server) DeleteColumnFamily(ctx context.Context, req *bttdpb.DeleteColumnFamilyRequest) (*emptypb.Empty, error) {
	i := strings.LastIndex(req.Name, "/columnFamilies/")
	if i < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "malformed family name %q", req.Name)
	}
	tblName, fam := req.Name[:i], req.Name[i+len("/columnFamilies/"):]

	tbl, err := s.lookupTable(tblName)
	if err != nil {
		return nil, err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	if _, ok := tbl.families[fam]; !ok {
		return nil, status.Errorf(codes.NotFound, "family %q not found", fam)
	}
	delete(tbl.families, fam)
	for _, r := range tbl.rows {
		delete(r.families, fam)
	}
	return &emptypb.Empty{}, nil
}

func (s *server) lookupTable(name string) (*table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tbl, ok := s.tables[name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "table %q not found", name)
	}
	return tbl, nil
}

//////////////////////////////////////////////////
// Data service.

func (s *server) ReadRows(req *btpb.ReadRowsRequest, stream btpb.BigtableService_ReadRowsServer) error {
	tbl, err := s.lookupTable(req.TableName)
	if err != nil {
		return err
	}

	// Snapshot the rows that match the target, then evaluate filters outside
	// the table lock.
	tbl.mu.RLock()
	var rows []*row
	switch tgt := req.Target.(type) {
	case *btpb.ReadRowsRequest_RowKey:
		if r := tbl.rows[string(tgt.RowKey)]; r != nil {
			rows = append(rows, r.copy())
		}
	case *btpb.ReadRowsRequest_RowRange:
		start, end := string(tgt.RowRange.StartKey), string(tgt.RowRange.EndKey)
		for key, r := range tbl.rows {
			if key >= start && (end == "" || key < end) {
				rows = append(rows, r.copy())
			}
		}
	case *btpb.ReadRowsRequest_RowSet:
		seen := map[string]bool{}
		for _, key := range tgt.RowSet.RowKeys {
			if r := tbl.rows[string(key)]; r != nil && !seen[string(key)] {
				seen[string(key)] = true
				rows = append(rows, r.copy())
			}
		}
		for _, rr := range tgt.RowSet.RowRanges {
			start, end := string(rr.StartKey), string(rr.EndKey)
			for key, r := range tbl.rows {
				if key >= start && (end == "" || key < end) && !seen[key] {
					seen[key] = true
					rows = append(rows, r.copy())
				}
			}
		}
	default:
		// No target means everything.
		for _, r := range tbl.rows {
			rows = append(rows, r.copy())
		}
	}
	tbl.mu.RUnlock()

	sort.Sort(byRowKey(rows))

	limit := int64(0)
	if req.NumRowsLimit > 0 {
		limit = req.NumRowsLimit
	}
	var nsent int64
	for _, r := range rows {
		if limit > 0 && nsent >= limit {
			break
		}
		// Rows whose cells have all been deleted stay in the map but must
		// not be served.
		if r.empty() {
			continue
		}
		if req.Filter != nil && !filterRow(req.Filter, r) {
			continue
		}
		if err := streamRow(stream, r); err != nil {
			return err
		}
		nsent++
	}
	return nil
}

// streamRow writes one row to the stream: one row_contents chunk per family
// followed by a commit_row chunk.
func streamRow(stream btpb.BigtableService_ReadRowsServer, r *row) error {
	res := &btpb.ReadRowsResponse{RowKey: []byte(r.key)}
	for _, fam := range r.sortedFamilies() {
		f := &btpb.Family{Name: fam}
		for _, qual := range r.sortedQualifiers(fam) {
			col := &btpb.Column{Qualifier: []byte(qual)}
			for _, cell := range r.families[fam][qual] {
				col.Cells = append(col.Cells, &btpb.Cell{
					TimestampMicros: cell.ts,
					Value:           cell.value,
				})
			}
			f.Columns = append(f.Columns, col)
		}
		res.Chunks = append(res.Chunks, &btpb.ReadRowsResponse_Chunk{
			Chunk: &btpb.ReadRowsResponse_Chunk_RowContents{RowContents: f},
		})
	}
	res.Chunks = append(res.Chunks, &btpb.ReadRowsResponse_Chunk{
		Chunk: &btpb.ReadRowsResponse_Chunk_CommitRow{CommitRow: true},
	})
	return stream.Send(res)
}

func (s *server) SampleRowKeys(req *btpb.SampleRowKeysRequest, stream btpb.BigtableService_SampleRowKeysServer) error {
	tbl, err := s.lookupTable(req.TableName)
	if err != nil {
		return err
	}

	tbl.mu.RLock()
	var keys []string
	for key := range tbl.rows {
		keys = append(keys, key)
	}
	tbl.mu.RUnlock()
	sort.Strings(keys)

	// The return value of SampleRowKeys is very loosely defined. Return at
	// least the final row key of the table and choose other row keys randomly.
	var offset int64
	for i, key := range keys {
		if i != len(keys)-1 && rand.Int31n(100) >= 50 {
			continue
		}
		res := &btpb.SampleRowKeysResponse{
			RowKey:      []byte(key),
			OffsetBytes: offset,
		}
		offset += int64(len(key))
		if err := stream.Send(res); err != nil {
			return err
		}
	}
	return nil
}

func (s *server) MutateRow(ctx context.Context, req *btpb.MutateRowRequest) (*emptypb.Empty, error) {
	tbl, err := s.lookupTable(req.TableName)
	if err != nil {
		return nil, err
	}

	r := tbl.mutableRow(string(req.RowKey))
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := applyMutations(tbl, r, req.Mutations, s.clock()); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *server) CheckAndMutateRow(ctx context.Context, req *btpb.CheckAndMutateRowRequest) (*btpb.CheckAndMutateRowResponse, error) {
	tbl, err := s.lookupTable(req.TableName)
	if err != nil {
		return nil, err
	}
	if req.PredicateFilter == nil {
		return nil, status.Errorf(codes.InvalidArgument, "predicate filter is required")
	}

	res := &btpb.CheckAndMutateRowResponse{}

	r := tbl.mutableRow(string(req.RowKey))
	r.mu.Lock()
	defer r.mu.Unlock()

	// The predicate matches if at least one cell survives the filter.
	whichMut := false
	if rcp := r.copy(); filterRow(req.PredicateFilter, rcp) && !rcp.empty() {
		whichMut = true
	}
	res.PredicateMatched = whichMut
	muts := req.FalseMutations
	if whichMut {
		muts = req.TrueMutations
	}
	if err := applyMutations(tbl, r, muts, s.clock()); err != nil {
		return nil, err
	}
	return res, nil
}

func applyMutations(tbl *table, r *row, muts []*btpb.Mutation, clock func() int64) error {
	for _, mut := range muts {
		switch m := mut.Mutation.(type) {
		case *btpb.Mutation_SetCell_:
			set := m.SetCell
			if err := checkFamily(tbl, set.FamilyName); err != nil {
				return err
			}
			ts := set.TimestampMicros
			if ts == -1 {
				ts = clock()
				ts -= ts % 1000 // round to millisecond granularity
			}
			if ts%1000 != 0 {
				return status.Errorf(codes.InvalidArgument, "timestamp granularity of %d is not supported", ts)
			}
			r.setCell(set.FamilyName, string(set.ColumnQualifier), cell{ts: ts, value: set.Value})
			gcColumn(tbl, r, set.FamilyName, string(set.ColumnQualifier), clock)
		case *btpb.Mutation_DeleteFromColumn_:
			del := m.DeleteFromColumn
			if err := checkFamily(tbl, del.FamilyName); err != nil {
				return err
			}
			if cols, ok := r.families[del.FamilyName]; ok {
				qual := string(del.ColumnQualifier)
				cells := cols[qual]
				if tr := del.TimeRange; tr != nil {
					var keep []cell
					for _, c := range cells {
						if c.ts < tr.StartTimestampMicros || (tr.EndTimestampMicros > 0 && c.ts >= tr.EndTimestampMicros) {
							keep = append(keep, c)
						}
					}
					cells = keep
				} else {
					cells = nil
				}
				if len(cells) == 0 {
					delete(cols, qual)
				} else {
					cols[qual] = cells
				}
			}
		case *btpb.Mutation_DeleteFromFamily_:
			if err := checkFamily(tbl, m.DeleteFromFamily.FamilyName); err != nil {
				return err
			}
			delete(r.families, m.DeleteFromFamily.FamilyName)
		case *btpb.Mutation_DeleteFromRow_:
			r.families = make(map[string]map[string][]cell)
		default:
			return status.Errorf(codes.InvalidArgument, "unknown mutation type %T", mut.Mutation)
		}
	}
	return nil
}

func checkFamily(tbl *table, fam string) error {
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()
	if _, ok := tbl.families[fam]; !ok {
		return status.Errorf(codes.NotFound, "family %q not found", fam)
	}
	return nil
}

// gcColumn applies the family's GC rule to a single column of a row.
// GC on the real service is lazy; applying it on write keeps reads honest
// without a background sweeper.
func gcColumn(tbl *table, r *row, fam, qual string, clock func() int64) {
	tbl.mu.RLock()
	rule := tbl.families[fam].gcRule
	tbl.mu.RUnlock()
	if rule == nil {
		return
	}
	cells := r.families[fam][qual]
	r.families[fam][qual] = applyGC(cells, rule, clock)
}

// applyGC applies the given GC rule to the cells, which must be sorted by
// descending timestamp.
func applyGC(cells []cell, rule *bttdpb.GcRule, clock func() int64) []cell {
	switch r := rule.Rule.(type) {
	case *bttdpb.GcRule_MaxNumVersions:
		if n := int(r.MaxNumVersions); len(cells) > n {
			cells = cells[:n]
		}
		return cells
	case *bttdpb.GcRule_MaxAge:
		cutoff := clock() - r.MaxAge.GetSeconds()*1e6 - int64(r.MaxAge.GetNanos())/1e3
		// Cells are in descending timestamp order; find the first expired one.
		i := sort.Search(len(cells), func(i int) bool { return cells[i].ts < cutoff })
		return cells[:i]
	case *bttdpb.GcRule_Union_:
		// A cell deleted by any sub-rule is gone.
		for _, sub := range r.Union.Rules {
			cells = applyGC(cells, sub, clock)
		}
		return cells
	case *bttdpb.GcRule_Intersection_:
		// A cell survives unless every sub-rule deletes it: keep the union of
		// the survivors.
		keep := map[int64]bool{}
		var out []cell
		for _, sub := range r.Intersection.Rules {
			for _, c := range applyGC(cells, sub, clock) {
				if !keep[c.ts] {
					keep[c.ts] = true
					out = append(out, c)
				}
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ts > out[j].ts })
		return out
	default:
		return cells
	}
}

func (s *server) ReadModifyWriteRow(ctx context.Context, req *btpb.ReadModifyWriteRowRequest) (*btpb.Row, error) {
	tbl, err := s.lookupTable(req.TableName)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]cell) // copy of updated cells; keyed by fam:qual
	clock := s.clock()

	r := tbl.mutableRow(string(req.RowKey))
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rule := range req.Rules {
		if err := checkFamily(tbl, rule.FamilyName); err != nil {
			return nil, err
		}
		key := rule.FamilyName + ":" + string(rule.ColumnQualifier)

		cells := r.families[rule.FamilyName][string(rule.ColumnQualifier)]
		ts := clock()
		var newCell cell
		switch ru := rule.Rule.(type) {
		case *btpb.ReadModifyWriteRule_AppendValue:
			var val []byte
			if len(cells) > 0 {
				val = cells[0].value // most recent cell
				ts = maxTS(ts, cells[0].ts+1)
			}
			val = append(val[:len(val):len(val)], ru.AppendValue...)
			newCell = cell{ts: ts, value: val}
		case *btpb.ReadModifyWriteRule_IncrementAmount:
			var v int64
			if len(cells) > 0 {
				prev := cells[0].value
				if len(prev) != 8 {
					return nil, status.Errorf(codes.InvalidArgument, "increment on non-64-bit value in %s", key)
				}
				for _, b := range prev {
					v = v<<8 | int64(b)
				}
				ts = maxTS(ts, cells[0].ts+1)
			}
			v += ru.IncrementAmount
			var val [8]byte
			for i := 0; i < 8; i++ {
				val[i] = byte(v >> uint(56-8*i))
			}
			newCell = cell{ts: ts, value: val[:]}
		default:
			return nil, status.Errorf(codes.InvalidArgument, "unknown read-modify-write rule %T", rule.Rule)
		}
		updates[key] = newCell
		r.setCell(rule.FamilyName, string(rule.ColumnQualifier), newCell)
	}

	// Assemble the response from the updated cells only.
	res := &btpb.Row{Key: req.RowKey}
	fams := make(map[string]*btpb.Family)
	for key, c := range updates {
		i := strings.Index(key, ":")
		fam, qual := key[:i], key[i+1:]
		f := fams[fam]
		if f == nil {
			f = &btpb.Family{Name: fam}
			fams[fam] = f
			res.Families = append(res.Families, f)
		}
		f.Columns = append(f.Columns, &btpb.Column{
			Qualifier: []byte(qual),
			Cells:     []*btpb.Cell{{TimestampMicros: c.ts, Value: c.value}},
		})
	}
	return res, nil
}

func maxTS(a, b int64) int64 {
	if b > a {
		return b
	}
	return a
}

//////////////////////////////////////////////////
// Storage.

type table struct {
	mu       sync.RWMutex
	families map[string]*columnFamily
	rows     map[string]*row
}

func newTable() *table {
	return &table{
		families: make(map[string]*columnFamily),
		rows:     make(map[string]*row),
	}
}

func (t *table) mutableRow(key string) *row {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.rows[key]
	if r == nil {
		r = newRow(key)
		t.rows[key] = r
	}
	return r
}

type columnFamily struct {
	gcRule *bttdpb.GcRule
}

type row struct {
	mu  sync.Mutex
	key string

	// families maps family name to qualifier to cells,
	// with cells in descending timestamp order.
	families map[string]map[string][]cell
}

func newRow(key string) *row {
	return &row{
		key:      key,
		families: make(map[string]map[string][]cell),
	}
}

// copy returns a deep copy suitable for mutation by filters.
// The caller must hold r.mu or otherwise have exclusive access.
func (r *row) copy() *row {
	nr := newRow(r.key)
	for fam, cols := range r.families {
		nr.families[fam] = make(map[string][]cell, len(cols))
		for qual, cells := range cols {
			// Copy the []cell slice, but not the []byte inside each cell.
			nr.families[fam][qual] = append([]cell(nil), cells...)
		}
	}
	return nr
}

func (r *row) empty() bool {
	for _, cols := range r.families {
		for _, cells := range cols {
			if len(cells) > 0 {
				return false
			}
		}
	}
	return true
}

// setCell records a cell, keeping the cells in descending timestamp order
// and replacing any existing cell with the same timestamp.
func (r *row) setCell(fam, qual string, c cell) {
	cols := r.families[fam]
	if cols == nil {
		cols = make(map[string][]cell)
		r.families[fam] = cols
	}
	cells := cols[qual]
	i := sort.Search(len(cells), func(i int) bool { return cells[i].ts <= c.ts })
	if i < len(cells) && cells[i].ts == c.ts {
		cells[i] = c
	} else {
		cells = append(cells, cell{})
		copy(cells[i+1:], cells[i:])
		cells[i] = c
	}
	cols[qual] = cells
}

func (r *row) sortedFamilies() []string {
	var fams []string
	for fam := range r.families {
		fams = append(fams, fam)
	}
	sort.Strings(fams)
	return fams
}

func (r *row) sortedQualifiers(fam string) []string {
	var quals []string
	for qual := range r.families[fam] {
		quals = append(quals, qual)
	}
	sort.Strings(quals)
	return quals
}

func (r *row) String() string {
	return fmt.Sprintf("{row key=%q}", r.key)
}

type byRowKey []*row

func (b byRowKey) Len() int           { return len(b) }
func (b byRowKey) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b byRowKey) Less(i, j int) bool { return b[i].key < b[j].key }

// newRegexp compiles a filter pattern with full-match semantics. The
// service requires the whole key, qualifier or value to match, while Go
// regexps match substrings by default.
func newRegexp(pat string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + pat + ")$")
}

type cell struct {
	ts    int64
	value []byte
}

//////////////////////////////////////////////////
// Filters.

// filterRow trims the row in place to the cells matching f, and reports
// whether the row should be delivered at all.
func filterRow(f *btpb.RowFilter, r *row) bool {
	if f == nil {
		return true
	}
	switch f := f.Filter.(type) {
	case *btpb.RowFilter_PassAllFilter:
		return true
	case *btpb.RowFilter_BlockAllFilter:
		return false
	case *btpb.RowFilter_Chain_:
		for _, sub := range f.Chain.Filters {
			if !filterRow(sub, r) {
				return false
			}
		}
		return true
	case *btpb.RowFilter_Interleave_:
		srs := make([]*row, 0, len(f.Interleave.Filters))
		for _, sub := range f.Interleave.Filters {
			sr := r.copy()
			filterRow(sub, sr)
			srs = append(srs, sr)
		}
		// Merge the surviving cells, dropping duplicates.
		r.families = make(map[string]map[string][]cell)
		for _, sr := range srs {
			for fam, cols := range sr.families {
				for qual, cells := range cols {
					for _, c := range cells {
						r.setCell(fam, qual, c)
					}
				}
			}
		}
		return !r.empty()
	case *btpb.RowFilter_Condition_:
		if cp := r.copy(); filterRow(f.Condition.PredicateFilter, cp) && !cp.empty() {
			if f.Condition.TrueFilter == nil {
				return false
			}
			return filterRow(f.Condition.TrueFilter, r)
		}
		if f.Condition.FalseFilter == nil {
			return false
		}
		return filterRow(f.Condition.FalseFilter, r)
	case *btpb.RowFilter_RowKeyRegexFilter:
		pat := string(f.RowKeyRegexFilter)
		rx, err := newRegexp(pat)
		if err != nil {
			return false
		}
		if !rx.MatchString(r.key) {
			return false
		}
		return true
	case *btpb.RowFilter_RowSampleFilter:
		return rand.Float64() < f.RowSampleFilter
	case *btpb.RowFilter_CellsPerRowLimitFilter:
		trimRowCells(r, 0, int(f.CellsPerRowLimitFilter))
		return true
	case *btpb.RowFilter_CellsPerRowOffsetFilter:
		trimRowCells(r, int(f.CellsPerRowOffsetFilter), -1)
		return true
	}

	// Any other case, operate on a per-column or per-cell basis.
	for fam, cols := range r.families {
		for qual, cells := range cols {
			var filtered []cell
			if lim, ok := f.Filter.(*btpb.RowFilter_CellsPerColumnLimitFilter); ok {
				filtered = cells
				if n := int(lim.CellsPerColumnLimitFilter); len(filtered) > n {
					filtered = filtered[:n]
				}
			} else {
				filtered = filterCells(f, fam, qual, cells)
			}
			if len(filtered) == 0 {
				delete(cols, qual)
			} else {
				cols[qual] = filtered
			}
		}
		if len(cols) == 0 {
			delete(r.families, fam)
		}
	}
	return !r.empty()
}

// trimRowCells retains at most limit cells of the row, after skipping the
// first offset cells, counting across the whole row in family/qualifier
// order. A negative limit means no limit.
func trimRowCells(r *row, offset, limit int) {
	for _, fam := range r.sortedFamilies() {
		cols := r.families[fam]
		for _, qual := range r.sortedQualifiers(fam) {
			cells := cols[qual]
			n := len(cells)
			switch {
			case offset >= n:
				offset -= n
				delete(cols, qual)
				continue
			case offset > 0:
				cells = cells[offset:]
				offset = 0
			}
			if limit >= 0 {
				if limit == 0 {
					delete(cols, qual)
					continue
				}
				if len(cells) > limit {
					cells = cells[:limit]
				}
				limit -= len(cells)
			}
			cols[qual] = cells
		}
		if len(cols) == 0 {
			delete(r.families, fam)
		}
	}
}

func filterCells(f *btpb.RowFilter, fam, qual string, cells []cell) []cell {
	var ret []cell
	for _, cell := range cells {
		if cell, ok := filterCell(f, fam, qual, cell); ok {
			ret = append(ret, cell)
		}
	}
	return ret
}

func filterCell(f *btpb.RowFilter, fam, qual string, c cell) (cell, bool) {
	switch f := f.Filter.(type) {
	case *btpb.RowFilter_FamilyNameRegexFilter:
		rx, err := newRegexp(f.FamilyNameRegexFilter)
		if err != nil {
			return c, false
		}
		return c, rx.MatchString(fam)
	case *btpb.RowFilter_ColumnQualifierRegexFilter:
		rx, err := newRegexp(string(f.ColumnQualifierRegexFilter))
		if err != nil {
			return c, false
		}
		return c, rx.MatchString(qual)
	case *btpb.RowFilter_ValueRegexFilter:
		rx, err := newRegexp(string(f.ValueRegexFilter))
		if err != nil {
			return c, false
		}
		return c, rx.Match(c.value)
	case *btpb.RowFilter_TimestampRangeFilter:
		tr := f.TimestampRangeFilter
		return c, c.ts >= tr.StartTimestampMicros && (tr.EndTimestampMicros == 0 || c.ts < tr.EndTimestampMicros)
	case *btpb.RowFilter_StripValueTransformer:
		c.value = nil
		return c, true
	case *btpb.RowFilter_ColumnRangeFilter:
		cr := f.ColumnRangeFilter
		if fam != cr.FamilyName {
			return c, false
		}
		switch sq := cr.StartQualifier.(type) {
		case *btpb.ColumnRange_StartQualifierInclusive:
			if qual < string(sq.StartQualifierInclusive) {
				return c, false
			}
		case *btpb.ColumnRange_StartQualifierExclusive:
			if qual <= string(sq.StartQualifierExclusive) {
				return c, false
			}
		}
		switch eq := cr.EndQualifier.(type) {
		case *btpb.ColumnRange_EndQualifierInclusive:
			if qual > string(eq.EndQualifierInclusive) {
				return c, false
			}
		case *btpb.ColumnRange_EndQualifierExclusive:
			if qual >= string(eq.EndQualifierExclusive) {
				return c, false
			}
		}
		return c, true
	case *btpb.RowFilter_ValueRangeFilter:
		vr := f.ValueRangeFilter
		v := string(c.value)
		switch sv := vr.StartValue.(type) {
		case *btpb.ValueRange_StartValueInclusive:
			if v < string(sv.StartValueInclusive) {
				return c, false
			}
		case *btpb.ValueRange_StartValueExclusive:
			if v <= string(sv.StartValueExclusive) {
				return c, false
			}
		}
		switch ev := vr.EndValue.(type) {
		case *btpb.ValueRange_EndValueInclusive:
			if v > string(ev.EndValueInclusive) {
				return c, false
			}
		case *btpb.ValueRange_EndValueExclusive:
			if v >= string(ev.EndValueExclusive) {
				return c, false
			}
		}
		return c, true
	default:
		// Unsupported filters (sink, labels) pass cells through untouched.
		return c, true
	}
}
