package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/endo/debugs"
	"github.com/reusee/endo/endo"
)

type Module struct {
	dscope.Module
	Endo   endo.Module
	Debugs debugs.Module
}
