package endoconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/endo/configs"
	"github.com/reusee/endo/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
