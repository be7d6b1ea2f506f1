// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"testing"

	"github.com/ecodeclub/devnav/internal/resource"
	"github.com/stretchr/testify/assert"
)

func TestVisible(t *testing.T) {
	t.Parallel()
	anonymous := Viewer{}
	loggedIn := Viewer{Uid: 7}
	pro := Viewer{Uid: 7, IsPro: true}

	testCases := []struct {
		name   string
		paid   bool
		viewer Viewer
		want   bool
	}{
		{name: "免费资源-未登录", paid: false, viewer: anonymous, want: true},
		{name: "免费资源-普通用户", paid: false, viewer: loggedIn, want: true},
		{name: "免费资源-会员", paid: false, viewer: pro, want: true},
		{name: "付费资源-未登录", paid: true, viewer: anonymous, want: false},
		{name: "付费资源-普通用户", paid: true, viewer: loggedIn, want: false},
		{name: "付费资源-会员", paid: true, viewer: pro, want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := resource.Resource{Id: 1, Paid: tc.paid}
			assert.Equal(t, tc.want, Visible(r, tc.viewer))
			assert.Equal(t, tc.want, Entry{Resource: r}.Visible(tc.viewer))
		})
	}
}
