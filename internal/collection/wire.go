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

//go:build wireinject

package collection

import (
	"sync"

	"github.com/ecodeclub/devnav/internal/collection/internal/event"
	"github.com/ecodeclub/devnav/internal/collection/internal/repository"
	"github.com/ecodeclub/devnav/internal/collection/internal/repository/dao"
	"github.com/ecodeclub/devnav/internal/collection/internal/service"
	"github.com/ecodeclub/devnav/internal/collection/internal/web"
	"github.com/ecodeclub/devnav/internal/resource"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, resourceModule *resource.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewCollectionRepository,
		event.NewProducer,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*resource.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CollectionDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCollectionDAO(db)
}
