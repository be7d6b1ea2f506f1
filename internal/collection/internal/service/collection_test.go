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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/devnav/internal/collection/internal/domain"
	"github.com/ecodeclub/devnav/internal/collection/internal/event"
	"github.com/ecodeclub/devnav/internal/collection/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	repository.CollectionRepository
	members map[[2]int64]struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{members: map[[2]int64]struct{}{}}
}

func (f *fakeRepo) AddResource(ctx context.Context, uid, cid, rid int64) (bool, error) {
	key := [2]int64{cid, rid}
	if _, ok := f.members[key]; ok {
		return false, nil
	}
	f.members[key] = struct{}{}
	return true, nil
}

func (f *fakeRepo) RemoveResource(ctx context.Context, uid, cid, rid int64) (bool, error) {
	key := [2]int64{cid, rid}
	if _, ok := f.members[key]; !ok {
		return false, nil
	}
	delete(f.members, key)
	return true, nil
}

func (f *fakeRepo) ResourceIds(ctx context.Context, uid int64, cid int64) ([]int64, error) {
	var rids []int64
	for key := range f.members {
		if key[0] == cid {
			rids = append(rids, key[1])
		}
	}
	return rids, nil
}

func (f *fakeRepo) Delete(ctx context.Context, uid int64, cid int64) error {
	for key := range f.members {
		if key[0] == cid {
			delete(f.members, key)
		}
	}
	return nil
}

func (f *fakeRepo) SaveStatuses(ctx context.Context, uid int64, rids []int64) (map[int64]domain.SaveStatus, error) {
	res := make(map[int64]domain.SaveStatus, len(rids))
	for _, rid := range rids {
		status := domain.SaveStatus{Rid: rid}
		for key := range f.members {
			if key[1] == rid {
				status.Saved = true
				status.CollectionCnt++
			}
		}
		res[rid] = status
	}
	return res, nil
}

type fakeProducer struct {
	evts []event.Event
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.Event) error {
	f.evts = append(f.evts, evt)
	return nil
}

func TestService_AddResource_幂等(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	producer := &fakeProducer{}
	svc := NewService(repo, nil, producer)

	// 重复添加同一个资源，只有第一次发事件
	require.NoError(t, svc.AddResource(context.Background(), 7, 1, 123))
	require.NoError(t, svc.AddResource(context.Background(), 7, 1, 123))

	require.Len(t, producer.evts, 1)
	assert.Equal(t, event.Event{Action: event.ActionSave, Uid: 7, Rid: 123}, producer.evts[0])
}

func TestService_RemoveResource_幂等(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	producer := &fakeProducer{}
	svc := NewService(repo, nil, producer)

	require.NoError(t, svc.AddResource(context.Background(), 7, 1, 123))
	require.NoError(t, svc.RemoveResource(context.Background(), 7, 1, 123))
	// 已经删掉了，再删是 no-op，也不发事件
	require.NoError(t, svc.RemoveResource(context.Background(), 7, 1, 123))

	require.Len(t, producer.evts, 2)
	assert.Equal(t, event.ActionUnsave, producer.evts[1].Action)
}

func TestService_Delete_补发取消收藏事件(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	producer := &fakeProducer{}
	svc := NewService(repo, nil, producer)

	// 123 同时收在收藏夹 1 和 2 里，456 只收在收藏夹 1 里
	require.NoError(t, svc.AddResource(context.Background(), 7, 1, 123))
	require.NoError(t, svc.AddResource(context.Background(), 7, 2, 123))
	require.NoError(t, svc.AddResource(context.Background(), 7, 1, 456))
	producer.evts = nil

	require.NoError(t, svc.Delete(context.Background(), 7, 1))

	// 只有整体变成未收藏的 456 发取消收藏事件
	require.Len(t, producer.evts, 1)
	assert.Equal(t, event.Event{Action: event.ActionUnsave, Uid: 7, Rid: 456}, producer.evts[0])
}

func TestService_SaveStatuses_空列表(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeRepo(), nil, &fakeProducer{})
	statuses, err := svc.SaveStatuses(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
