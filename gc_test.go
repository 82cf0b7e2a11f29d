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
	"time"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"go.chromium.org/bigtable/internal/bttdpb"
)

func TestGCPolicy(t *testing.T) {
	t.Parallel()

	ftt.Run("String forms", t, func(t *ftt.Test) {
		assert.Loosely(t, MaxVersionsPolicy(3).String(), should.Equal("versions() > 3"))
		assert.Loosely(t, MaxAgePolicy(72*time.Hour).String(), should.Equal("age() > 72h0m0s"))
		assert.Loosely(t,
			UnionPolicy(MaxVersionsPolicy(10), MaxAgePolicy(time.Hour)).String(),
			should.Equal("(versions() > 10 || age() > 1h0m0s)"))
		assert.Loosely(t,
			IntersectionPolicy(MaxVersionsPolicy(2), MaxAgePolicy(time.Minute)).String(),
			should.Equal("(versions() > 2 && age() > 1m0s)"))
	})

	ftt.Run("Proto round trip", t, func(t *ftt.Test) {
		policies := []GCPolicy{
			MaxVersionsPolicy(7),
			MaxAgePolicy(90 * time.Minute),
			UnionPolicy(MaxVersionsPolicy(1), MaxAgePolicy(time.Second)),
			IntersectionPolicy(
				UnionPolicy(MaxVersionsPolicy(5), MaxAgePolicy(24*time.Hour)),
				MaxVersionsPolicy(100),
			),
		}
		for _, p := range policies {
			got := gcPolicyFromProto(p.proto())
			assert.Loosely(t, got.String(), should.Equal(p.String()))
			assert.Loosely(t, got.proto(), should.Match(p.proto()))
		}
	})

	ftt.Run("MaxAge proto carries sub-second precision", t, func(t *ftt.Test) {
		p := MaxAgePolicy(1500 * time.Millisecond)
		rule := p.proto().GetMaxAge()
		assert.Loosely(t, rule.Seconds, should.Equal(1))
		assert.Loosely(t, rule.Nanos, should.Equal(500000000))
	})

	ftt.Run("gcPolicyFromProto tolerates nil and empty rules", t, func(t *ftt.Test) {
		assert.Loosely(t, gcPolicyFromProto(nil), should.BeNil)
		assert.Loosely(t, gcPolicyFromProto(&bttdpb.GcRule{}), should.BeNil)
	})
}
