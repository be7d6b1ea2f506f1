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

type Collection struct {
	Id          int64
	Uid         int64
	Name        string
	Description string
	Public      bool
	// ResourceCnt 收藏夹内的资源数量
	ResourceCnt int
	Ctime       int64
	Utime       int64
}

// SaveStatus 某个资源对某个用户的收藏状态。
// 同一个资源可以被收进多个收藏夹，Saved 表示至少收进了一个。
type SaveStatus struct {
	Rid           int64
	Saved         bool
	CollectionCnt int
}
