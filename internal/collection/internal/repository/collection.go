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

package repository

import (
	"context"

	"github.com/ecodeclub/devnav/internal/collection/internal/domain"
	"github.com/ecodeclub/devnav/internal/collection/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrDuplicateName      = dao.ErrDuplicateName
	ErrCollectionNotFound = dao.ErrCollectionNotFound
)

type CollectionRepository interface {
	Create(ctx context.Context, c domain.Collection) (int64, error)
	Update(ctx context.Context, c domain.Collection) error
	Delete(ctx context.Context, uid int64, cid int64) error
	ListByUid(ctx context.Context, uid int64) ([]domain.Collection, error)
	AddResource(ctx context.Context, uid, cid, rid int64) (bool, error)
	RemoveResource(ctx context.Context, uid, cid, rid int64) (bool, error)
	ResourceIds(ctx context.Context, uid int64, cid int64) ([]int64, error)
	SaveStatuses(ctx context.Context, uid int64, rids []int64) (map[int64]domain.SaveStatus, error)
	SavedRids(ctx context.Context, uid int64) ([]int64, error)
}

type collectionRepository struct {
	dao dao.CollectionDAO
}

func NewCollectionRepository(d dao.CollectionDAO) CollectionRepository {
	return &collectionRepository{dao: d}
}

func (c *collectionRepository) Create(ctx context.Context, col domain.Collection) (int64, error) {
	return c.dao.Create(ctx, c.toEntity(col))
}

func (c *collectionRepository) Update(ctx context.Context, col domain.Collection) error {
	return c.dao.Update(ctx, c.toEntity(col))
}

func (c *collectionRepository) Delete(ctx context.Context, uid int64, cid int64) error {
	return c.dao.Delete(ctx, uid, cid)
}

func (c *collectionRepository) ListByUid(ctx context.Context, uid int64) ([]domain.Collection, error) {
	cols, err := c.dao.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, nil
	}
	cids := slice.Map(cols, func(idx int, src dao.Collection) int64 {
		return src.Id
	})
	cnts, err := c.dao.CountByCids(ctx, cids)
	if err != nil {
		return nil, err
	}
	return slice.Map(cols, func(idx int, src dao.Collection) domain.Collection {
		res := c.toDomain(src)
		res.ResourceCnt = cnts[src.Id]
		return res
	}), nil
}

func (c *collectionRepository) AddResource(ctx context.Context, uid, cid, rid int64) (bool, error) {
	return c.dao.AddResource(ctx, uid, cid, rid)
}

func (c *collectionRepository) RemoveResource(ctx context.Context, uid, cid, rid int64) (bool, error) {
	return c.dao.RemoveResource(ctx, uid, cid, rid)
}

func (c *collectionRepository) ResourceIds(ctx context.Context, uid int64, cid int64) ([]int64, error) {
	return c.dao.ResourceIds(ctx, uid, cid)
}

func (c *collectionRepository) SaveStatuses(ctx context.Context, uid int64, rids []int64) (map[int64]domain.SaveStatus, error) {
	rows, err := c.dao.SaveStatuses(ctx, uid, rids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.SaveStatus, len(rids))
	for _, rid := range rids {
		res[rid] = domain.SaveStatus{Rid: rid}
	}
	for _, row := range rows {
		res[row.Rid] = domain.SaveStatus{
			Rid:           row.Rid,
			Saved:         row.Cnt > 0,
			CollectionCnt: row.Cnt,
		}
	}
	return res, nil
}

func (c *collectionRepository) SavedRids(ctx context.Context, uid int64) ([]int64, error) {
	return c.dao.SavedRids(ctx, uid)
}

func (c *collectionRepository) toEntity(col domain.Collection) dao.Collection {
	return dao.Collection{
		Id:          col.Id,
		Uid:         col.Uid,
		Name:        col.Name,
		Description: col.Description,
		Public:      col.Public,
	}
}

func (c *collectionRepository) toDomain(col dao.Collection) domain.Collection {
	return domain.Collection{
		Id:          col.Id,
		Uid:         col.Uid,
		Name:        col.Name,
		Description: col.Description,
		Public:      col.Public,
		Ctime:       col.Ctime,
		Utime:       col.Utime,
	}
}
