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

package event

// 收藏动作也走互动事件的主题，下游只关心哪个资源的状态变了
const (
	Topic        = "interactive_events"
	ActionSave   = "save"
	ActionUnsave = "unsave"
)

type Event struct {
	Action string `json:"action"`
	Uid    int64  `json:"uid"`
	Rid    int64  `json:"rid"`
}
