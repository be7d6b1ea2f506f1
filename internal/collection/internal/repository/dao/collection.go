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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateName      = errors.New("收藏夹名字冲突")
	ErrCollectionNotFound = errors.New("收藏夹不存在")
)

type Collection struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Uid         int64  `gorm:"uniqueIndex:uid_name"`
	Name        string `gorm:"uniqueIndex:uid_name;type:varchar(256)"`
	Description string `gorm:"type:text"`
	Public      bool
	Ctime       int64
	Utime       int64
}

// CollectionResource 收藏夹和资源的关联。冗余 uid，
// 查询用户的收藏状态时不需要再 join 收藏夹表。
type CollectionResource struct {
	Id    int64 `gorm:"primaryKey,autoIncrement"`
	Cid   int64 `gorm:"uniqueIndex:cid_rid"`
	Rid   int64 `gorm:"uniqueIndex:cid_rid;index:idx_uid_rid,priority:2"`
	Uid   int64 `gorm:"index:idx_uid_rid,priority:1"`
	Ctime int64
}

type RidCnt struct {
	Rid int64
	Cnt int
}

type CollectionDAO interface {
	Create(ctx context.Context, c Collection) (int64, error)
	Update(ctx context.Context, c Collection) error
	// Delete 连同收藏夹里的关联记录一起删
	Delete(ctx context.Context, uid int64, cid int64) error
	ListByUid(ctx context.Context, uid int64) ([]Collection, error)
	CountByCids(ctx context.Context, cids []int64) (map[int64]int, error)
	// AddResource 幂等，返回是否真的新插入了记录
	AddResource(ctx context.Context, uid, cid, rid int64) (bool, error)
	// RemoveResource 幂等，返回是否真的删掉了记录
	RemoveResource(ctx context.Context, uid, cid, rid int64) (bool, error)
	ResourceIds(ctx context.Context, uid int64, cid int64) ([]int64, error)
	SaveStatuses(ctx context.Context, uid int64, rids []int64) ([]RidCnt, error)
	SavedRids(ctx context.Context, uid int64) ([]int64, error)
}

type GORMCollectionDAO struct {
	db *egorm.Component
}

func NewCollectionDAO(db *egorm.Component) CollectionDAO {
	return &GORMCollectionDAO{db: db}
}

func (g *GORMCollectionDAO) Create(ctx context.Context, c Collection) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := g.db.WithContext(ctx).Create(&c).Error
	if isUniqueConflict(err) {
		return 0, ErrDuplicateName
	}
	return c.Id, err
}

func (g *GORMCollectionDAO) Update(ctx context.Context, c Collection) error {
	res := g.db.WithContext(ctx).Model(&Collection{}).
		Where("id = ? AND uid = ?", c.Id, c.Uid).
		Updates(map[string]any{
			"name":        c.Name,
			"description": c.Description,
			"public":      c.Public,
			"utime":       time.Now().UnixMilli(),
		})
	if isUniqueConflict(res.Error) {
		return ErrDuplicateName
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrCollectionNotFound
	}
	return nil
}

func (g *GORMCollectionDAO) Delete(ctx context.Context, uid int64, cid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND uid = ?", cid, uid).Delete(&Collection{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrCollectionNotFound
		}
		return tx.Where("cid = ?", cid).Delete(&CollectionResource{}).Error
	})
}

func (g *GORMCollectionDAO) ListByUid(ctx context.Context, uid int64) ([]Collection, error) {
	var res []Collection
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMCollectionDAO) CountByCids(ctx context.Context, cids []int64) (map[int64]int, error) {
	var rows []struct {
		Cid int64
		Cnt int
	}
	err := g.db.WithContext(ctx).Model(&CollectionResource{}).
		Select("cid, COUNT(*) AS cnt").
		Where("cid IN ?", cids).
		Group("cid").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int, len(rows))
	for _, row := range rows {
		res[row.Cid] = row.Cnt
	}
	return res, nil
}

func (g *GORMCollectionDAO) AddResource(ctx context.Context, uid, cid, rid int64) (bool, error) {
	var inserted bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Collection
		err := tx.Where("id = ? AND uid = ?", cid, uid).First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollectionNotFound
		}
		if err != nil {
			return err
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&CollectionResource{
			Cid:   cid,
			Rid:   rid,
			Uid:   uid,
			Ctime: time.Now().UnixMilli(),
		})
		inserted = res.RowsAffected > 0
		return res.Error
	})
	return inserted, err
}

func (g *GORMCollectionDAO) RemoveResource(ctx context.Context, uid, cid, rid int64) (bool, error) {
	res := g.db.WithContext(ctx).
		Where("cid = ? AND rid = ? AND uid = ?", cid, rid, uid).
		Delete(&CollectionResource{})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMCollectionDAO) ResourceIds(ctx context.Context, uid int64, cid int64) ([]int64, error) {
	var rids []int64
	err := g.db.WithContext(ctx).Model(&CollectionResource{}).
		Where("cid = ? AND uid = ?", cid, uid).
		Order("ctime DESC").
		Pluck("rid", &rids).Error
	return rids, err
}

func (g *GORMCollectionDAO) SaveStatuses(ctx context.Context, uid int64, rids []int64) ([]RidCnt, error) {
	var rows []RidCnt
	err := g.db.WithContext(ctx).Model(&CollectionResource{}).
		Select("rid, COUNT(*) AS cnt").
		Where("uid = ? AND rid IN ?", uid, rids).
		Group("rid").
		Find(&rows).Error
	return rows, err
}

func (g *GORMCollectionDAO) SavedRids(ctx context.Context, uid int64) ([]int64, error) {
	var rids []int64
	err := g.db.WithContext(ctx).Model(&CollectionResource{}).
		Distinct("rid").
		Where("uid = ?", uid).
		Pluck("rid", &rids).Error
	return rids, err
}

func isUniqueConflict(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
