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

// Package bigtable is a client for the Cloud Bigtable v1 API.
//
// It exposes three clients, one per Bigtable service:
//
//   - Client reads and writes row data in a single cluster's tables
//     (bigtable.googleapis.com).
//   - AdminClient manages tables and column families within a cluster
//     (bigtabletableadmin.googleapis.com).
//   - ClusterAdminClient manages zones and clusters within a project
//     (bigtableclusteradmin.googleapis.com).
//
// All clients authenticate and dial through google.golang.org/api/option,
// so credentials, endpoints and preestablished gRPC connections can all be
// injected:
//
//	client, err := bigtable.NewClient(ctx, "project", "zone", "cluster")
//	if err != nil { ... }
//	defer client.Close()
//
//	tbl := client.Open("mytable")
//
//	mut := bigtable.NewMutation()
//	mut.Set("links", "golang.org", bigtable.Now(), []byte("Gophers!"))
//	if err := tbl.Apply(ctx, "com.example/page", mut); err != nil { ... }
//
//	err = tbl.ReadRows(ctx, bigtable.PrefixRange("com."), func(r bigtable.Row) bool {
//	  // Process r.
//	  return true // keep going
//	})
//
// Unary RPCs are retried with exponential backoff on transient gRPC codes.
// Streaming reads transparently resume after the last successfully delivered
// row. Retries respect ctx cancellation and log through
// go.chromium.org/luci/common/logging.
package bigtable
