//go:build wireinject
// +build wireinject

package main

import (
	"time"

	"github.com/google/wire"
)

func Initialize(timeout time.Duration) Deps {
	wire.Build(
		NewProber,
		NewCheckRunner,
		wire.Struct(new(Deps), "*"),
	)
	return Deps{}
}
