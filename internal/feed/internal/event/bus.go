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

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const Topic = "interactive_events"

// Signal 互动事件到了失效总线这里只是一个提示：
// 哪个资源的状态变了。不携带权威的计数
type Signal struct {
	Action string `json:"action"`
	Uid    int64  `json:"uid"`
	Rid    int64  `json:"rid"`
}

// Subscription 按资源 id 订阅失效信号。
// 订阅方消费不过来时信号直接丢掉，反正下一次还会来
type Subscription struct {
	C    chan Signal
	rids []int64
}

// Bus 把消息队列上的互动事件分发给关心对应资源的订阅方
type Bus struct {
	mu       sync.RWMutex
	subs     map[int64]map[*Subscription]struct{}
	consumer mq.Consumer
	logger   *elog.Component
}

func NewBus(q mq.MQ) (*Bus, error) {
	groupID := "feed_invalidation"
	consumer, err := q.Consumer(Topic, groupID)
	if err != nil {
		return nil, err
	}
	return &Bus{
		subs:     map[int64]map[*Subscription]struct{}{},
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (b *Bus) Subscribe(rids []int64) *Subscription {
	sub := &Subscription{C: make(chan Signal, 16)}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attach(sub, rids)
	return sub
}

// Resubscribe 原地替换订阅的资源集合，复用原来的 channel
func (b *Bus) Resubscribe(sub *Subscription, rids []int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.detach(sub)
	b.attach(sub, rids)
}

// Unsubscribe 和 Subscribe 严格对称：移除全部登记并关闭 channel
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.detach(sub)
	close(sub.C)
}

func (b *Bus) attach(sub *Subscription, rids []int64) {
	sub.rids = rids
	for _, rid := range rids {
		if b.subs[rid] == nil {
			b.subs[rid] = map[*Subscription]struct{}{}
		}
		b.subs[rid][sub] = struct{}{}
	}
}

func (b *Bus) detach(sub *Subscription) {
	for _, rid := range sub.rids {
		delete(b.subs[rid], sub)
		if len(b.subs[rid]) == 0 {
			delete(b.subs, rid)
		}
	}
	sub.rids = nil
}

func (b *Bus) Consume(ctx context.Context) error {
	msg, err := b.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var sig Signal
	err = json.Unmarshal(msg.Value, &sig)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	b.dispatch(sig)
	return nil
}

func (b *Bus) dispatch(sig Signal) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs[sig.Rid] {
		select {
		case sub.C <- sig:
		default:
		}
	}
}

func (b *Bus) Start(ctx context.Context) {
	go func() {
		for {
			err := b.Consume(ctx)
			if err != nil {
				b.logger.Error("分发失效信号失败", elog.FieldErr(err))
			}
		}
	}()
}

func (b *Bus) Stop(_ context.Context) error {
	return b.consumer.Close()
}
