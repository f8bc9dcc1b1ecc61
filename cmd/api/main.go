package main

import (
	appfx "Flux/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
