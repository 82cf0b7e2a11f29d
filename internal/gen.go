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

//go:generate ../scripts/regen_protos.sh

// Package internal holds the generated protobuf bindings for the Bigtable
// v1 API surfaces (data, table admin, cluster admin).
//
// The .pb.go files under btpb, bttdpb and btcpb are checked in. Run
// scripts/regen_protos.sh to regenerate them from googleapis.
package internal
