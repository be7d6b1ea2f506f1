package web

import (
	"github.com/ecodeclub/devnav/internal/collection/internal/domain"
	"github.com/ecodeclub/devnav/internal/resource"
)

type CreateReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

type UpdateReq struct {
	Cid         int64  `json:"cid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

type CollectionId struct {
	Cid int64 `json:"cid"`
}

type Collection struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
	ResourceCnt int    `json:"resourceCnt"`
	Ctime       int64  `json:"ctime"`
}

type CollectionList struct {
	Collections []Collection `json:"collections"`
}

type ResourceReq struct {
	Cid int64 `json:"cid"`
	Rid int64 `json:"rid"`
}

type ResourceList struct {
	Resources []Resource `json:"resources"`
}

type Resource struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Paid        bool   `json:"paid"`
	Difficulty  string `json:"difficulty"`
	Subcategory string `json:"subcategory"`
	Category    string `json:"category"`
	LikeCnt     int    `json:"likeCnt"`
}

type SaveStatusReq struct {
	Rids []int64 `json:"rids"`
}

type SaveStatus struct {
	Saved         bool `json:"saved"`
	CollectionCnt int  `json:"collectionCnt"`
}

type SaveStatusResp struct {
	StatusMap map[int64]SaveStatus `json:"statusMap"`
}

type SavedRidsResp struct {
	Rids []int64 `json:"rids"`
}

func newCollection(c domain.Collection) Collection {
	return Collection{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Public:      c.Public,
		ResourceCnt: c.ResourceCnt,
		Ctime:       c.Ctime,
	}
}

func newResource(r resource.Resource) Resource {
	return Resource{
		Id:          r.Id,
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
		Paid:        r.Paid,
		Difficulty:  r.Difficulty,
		Subcategory: r.Subcategory,
		Category:    r.Category,
		LikeCnt:     r.LikeCnt,
	}
}
