package main

import (
	"go.uber.org/fx"

	"github.com/Shoaib232002/Alumni-Project/internal/bootstrap"
	"github.com/Shoaib232002/Alumni-Project/pkg/routes"
)

func main() {
	bootstrap.LoadEnv()

	app := fx.New(
		routes.Module,
	)

	app.Run()
}
