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

	"github.com/ecodeclub/devnav/internal/collection/internal/domain"
	"github.com/ecodeclub/devnav/internal/collection/internal/event"
	"github.com/ecodeclub/devnav/internal/collection/internal/repository"
	"github.com/ecodeclub/devnav/internal/resource"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrDuplicateName      = repository.ErrDuplicateName
	ErrCollectionNotFound = repository.ErrCollectionNotFound
)

type CollectionService interface {
	Create(ctx context.Context, c domain.Collection) (int64, error)
	Update(ctx context.Context, c domain.Collection) error
	Delete(ctx context.Context, uid int64, cid int64) error
	List(ctx context.Context, uid int64) ([]domain.Collection, error)
	// AddResource 幂等，重复添加不报错也不重复发事件
	AddResource(ctx context.Context, uid, cid, rid int64) error
	// RemoveResource 幂等，删除不存在的记录是 no-op
	RemoveResource(ctx context.Context, uid, cid, rid int64) error
	// Resources 返回收藏夹里的资源明细，按收藏时间倒序
	Resources(ctx context.Context, uid int64, cid int64) ([]resource.Resource, error)
	SaveStatuses(ctx context.Context, uid int64, rids []int64) (map[int64]domain.SaveStatus, error)
	// SavedRids 用户收藏过的全部资源 id
	SavedRids(ctx context.Context, uid int64) ([]int64, error)
}

type collectionService struct {
	repo        repository.CollectionRepository
	resourceSvc resource.Service
	producer    event.Producer
	logger      *elog.Component
}

func NewService(repo repository.CollectionRepository,
	resourceSvc resource.Service,
	producer event.Producer) CollectionService {
	return &collectionService{
		repo:        repo,
		resourceSvc: resourceSvc,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

func (c *collectionService) Create(ctx context.Context, col domain.Collection) (int64, error) {
	return c.repo.Create(ctx, col)
}

func (c *collectionService) Update(ctx context.Context, col domain.Collection) error {
	return c.repo.Update(ctx, col)
}

func (c *collectionService) Delete(ctx context.Context, uid int64, cid int64) error {
	rids, err := c.repo.ResourceIds(ctx, uid, cid)
	if err != nil {
		return err
	}
	if err = c.repo.Delete(ctx, uid, cid); err != nil {
		return err
	}
	// 删掉收藏夹之后这些资源可能整体变成未收藏，补发取消收藏信号
	if len(rids) == 0 {
		return nil
	}
	statuses, err := c.repo.SaveStatuses(ctx, uid, rids)
	if err != nil {
		c.logger.Error("删除收藏夹后查询收藏状态失败", elog.FieldErr(err), elog.Int64("cid", cid))
		return nil
	}
	for _, rid := range rids {
		if !statuses[rid].Saved {
			c.produce(ctx, event.Event{Action: event.ActionUnsave, Uid: uid, Rid: rid})
		}
	}
	return nil
}

func (c *collectionService) List(ctx context.Context, uid int64) ([]domain.Collection, error) {
	return c.repo.ListByUid(ctx, uid)
}

func (c *collectionService) AddResource(ctx context.Context, uid, cid, rid int64) error {
	inserted, err := c.repo.AddResource(ctx, uid, cid, rid)
	if err != nil {
		return err
	}
	if inserted {
		c.produce(ctx, event.Event{Action: event.ActionSave, Uid: uid, Rid: rid})
	}
	return nil
}

func (c *collectionService) RemoveResource(ctx context.Context, uid, cid, rid int64) error {
	removed, err := c.repo.RemoveResource(ctx, uid, cid, rid)
	if err != nil {
		return err
	}
	if removed {
		c.produce(ctx, event.Event{Action: event.ActionUnsave, Uid: uid, Rid: rid})
	}
	return nil
}

func (c *collectionService) Resources(ctx context.Context, uid int64, cid int64) ([]resource.Resource, error) {
	rids, err := c.repo.ResourceIds(ctx, uid, cid)
	if err != nil {
		return nil, err
	}
	return c.resourceSvc.GetByIds(ctx, rids)
}

func (c *collectionService) SaveStatuses(ctx context.Context, uid int64, rids []int64) (map[int64]domain.SaveStatus, error) {
	if len(rids) == 0 {
		return map[int64]domain.SaveStatus{}, nil
	}
	return c.repo.SaveStatuses(ctx, uid, rids)
}

func (c *collectionService) SavedRids(ctx context.Context, uid int64) ([]int64, error) {
	return c.repo.SavedRids(ctx, uid)
}

func (c *collectionService) produce(ctx context.Context, evt event.Event) {
	if err := c.producer.Produce(ctx, evt); err != nil {
		c.logger.Error("发送收藏事件失败", elog.FieldErr(err), elog.Any("event", evt))
	}
}
