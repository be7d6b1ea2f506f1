package web

import (
	"errors"

	"github.com/ecodeclub/devnav/internal/collection/internal/domain"
	"github.com/ecodeclub/devnav/internal/collection/internal/service"
	"github.com/ecodeclub/devnav/internal/resource"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CollectionService
}

func NewHandler(svc service.CollectionService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/collection")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/update", ginx.BS[UpdateReq](h.Update))
	g.POST("/delete", ginx.BS[CollectionId](h.Delete))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[CollectionId](h.Detail))
	g.POST("/resource/add", ginx.BS[ResourceReq](h.AddResource))
	g.POST("/resource/remove", ginx.BS[ResourceReq](h.RemoveResource))
	g.POST("/resource/status", ginx.BS[SaveStatusReq](h.SaveStatuses))
	g.POST("/resource/saved", ginx.S(h.SavedRids))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Collection{
		Uid:         sess.Claims().Uid,
		Name:        req.Name,
		Description: req.Description,
		Public:      req.Public,
	})
	if errors.Is(err, service.ErrDuplicateName) {
		return duplicateNameResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx, domain.Collection{
		Id:          req.Cid,
		Uid:         sess.Claims().Uid,
		Name:        req.Name,
		Description: req.Description,
		Public:      req.Public,
	})
	switch {
	case errors.Is(err, service.ErrDuplicateName):
		return duplicateNameResult, nil
	case errors.Is(err, service.ErrCollectionNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req CollectionId, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Cid)
	if errors.Is(err, service.ErrCollectionNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cols, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CollectionList{
			Collections: slice.Map(cols, func(idx int, src domain.Collection) Collection {
				return newCollection(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req CollectionId, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.Resources(ctx, sess.Claims().Uid, req.Cid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ResourceList{
			Resources: slice.Map(rs, func(idx int, src resource.Resource) Resource {
				return newResource(src)
			}),
		},
	}, nil
}

func (h *Handler) AddResource(ctx *ginx.Context, req ResourceReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AddResource(ctx, sess.Claims().Uid, req.Cid, req.Rid)
	if errors.Is(err, service.ErrCollectionNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RemoveResource(ctx *ginx.Context, req ResourceReq, sess session.Session) (ginx.Result, error) {
	if err := h.svc.RemoveResource(ctx, sess.Claims().Uid, req.Cid, req.Rid); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// SavedRids 返回用户收藏过的全部资源 id，客户端用来渲染收藏页
func (h *Handler) SavedRids(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rids, err := h.svc.SavedRids(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SavedRidsResp{Rids: rids}}, nil
}

func (h *Handler) SaveStatuses(ctx *ginx.Context, req SaveStatusReq, sess session.Session) (ginx.Result, error) {
	statuses, err := h.svc.SaveStatuses(ctx, sess.Claims().Uid, req.Rids)
	if err != nil {
		return systemErrorResult, err
	}
	statusMap := make(map[int64]SaveStatus, len(statuses))
	for rid, st := range statuses {
		statusMap[rid] = SaveStatus{
			Saved:         st.Saved,
			CollectionCnt: st.CollectionCnt,
		}
	}
	return ginx.Result{Data: SaveStatusResp{StatusMap: statusMap}}, nil
}
