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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) (*Bus, mq.Producer) {
	t.Helper()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), Topic, 1))
	bus, err := NewBus(q)
	require.NoError(t, err)
	producer, err := q.Producer(Topic)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	bus.Start(ctx)
	t.Cleanup(func() { _ = bus.Stop(ctx) })
	waitConsuming(t, bus, producer)
	return bus, producer
}

// waitConsuming 用哨兵信号等消费循环跑起来，
// 循环启动之前投出去的消息会丢
func waitConsuming(t *testing.T, bus *Bus, producer mq.Producer) {
	t.Helper()
	sentinel := int64(-1)
	sub := bus.Subscribe([]int64{sentinel})
	defer bus.Unsubscribe(sub)
	deadline := time.After(5 * time.Second)
	for {
		produce(t, producer, Signal{Rid: sentinel})
		select {
		case <-sub.C:
			return
		case <-deadline:
			t.Fatal("消费循环没有跑起来")
		case <-time.After(250 * time.Millisecond):
		}
	}
}

func produce(t *testing.T, producer mq.Producer, sig Signal) {
	t.Helper()
	data, err := json.Marshal(sig)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)
}

func recv(t *testing.T, ch chan Signal) Signal {
	t.Helper()
	select {
	case sig := <-ch:
		return sig
	case <-time.After(3 * time.Second):
		t.Fatal("等不到失效信号")
		return Signal{}
	}
}

func TestBus_按资源分发(t *testing.T) {
	bus, producer := newTestBus(t)

	subA := bus.Subscribe([]int64{1, 2})
	subB := bus.Subscribe([]int64{2})

	produce(t, producer, Signal{Action: "like", Uid: 7, Rid: 2})
	sigA := recv(t, subA.C)
	sigB := recv(t, subB.C)
	assert.Equal(t, Signal{Action: "like", Uid: 7, Rid: 2}, sigA)
	assert.Equal(t, sigA, sigB)

	// rid=1 只有 A 订了
	produce(t, producer, Signal{Action: "view", Uid: 7, Rid: 1})
	assert.Equal(t, int64(1), recv(t, subA.C).Rid)
	select {
	case sig := <-subB.C:
		t.Fatalf("不该收到信号: %+v", sig)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_退订之后不再收到信号(t *testing.T) {
	bus, producer := newTestBus(t)

	sub := bus.Subscribe([]int64{1})
	produce(t, producer, Signal{Action: "like", Rid: 1})
	recv(t, sub.C)

	bus.Unsubscribe(sub)
	produce(t, producer, Signal{Action: "unlike", Rid: 1})

	// 退订关闭了 channel，只会读到零值
	time.Sleep(50 * time.Millisecond)
	sig, ok := <-sub.C
	assert.False(t, ok)
	assert.Zero(t, sig)
}

func TestBus_Resubscribe(t *testing.T) {
	bus, producer := newTestBus(t)

	sub := bus.Subscribe([]int64{1})
	bus.Resubscribe(sub, []int64{2})

	produce(t, producer, Signal{Action: "like", Rid: 1})
	produce(t, producer, Signal{Action: "like", Rid: 2})

	// 换了订阅集合之后只收得到 rid=2 的
	assert.Equal(t, int64(2), recv(t, sub.C).Rid)
	select {
	case sig := <-sub.C:
		t.Fatalf("不该收到信号: %+v", sig)
	case <-time.After(50 * time.Millisecond):
	}

	bus.Unsubscribe(sub)
}
