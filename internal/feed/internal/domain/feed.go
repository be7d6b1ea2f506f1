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
	"github.com/ecodeclub/devnav/internal/resource"
)

// Viewer 当前在浏览资源流的人。Uid 为 0 代表没登录
type Viewer struct {
	Uid   int64
	IsPro bool
}

func (v Viewer) LoggedIn() bool {
	return v.Uid > 0
}

// Entry 资源流里的一条。点赞数以互动模块的为准，
// 不用 Resource 里冗余的那一份
type Entry struct {
	Resource resource.Resource
	LikeCnt  int
	ViewCnt  int
	Liked    bool
	Saved    bool
}

// Visible 付费资源只对 pro 会员可见，免费资源对所有人可见
func (e Entry) Visible(v Viewer) bool {
	return Visible(e.Resource, v)
}

func Visible(r resource.Resource, v Viewer) bool {
	return !r.Paid || v.IsPro
}
