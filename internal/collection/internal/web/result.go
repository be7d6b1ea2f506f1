package web

import (
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: 504001,
		Msg:  "系统错误",
	}
	duplicateNameResult = ginx.Result{
		Code: 504002,
		Msg:  "收藏夹名字已经存在",
	}
	notFoundResult = ginx.Result{
		Code: 504003,
		Msg:  "收藏夹不存在",
	}
)
