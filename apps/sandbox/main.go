package main

import (
	"go.uber.org/fx"

	"github.com/superbutton/superbutton-go/internal/config"
	"github.com/superbutton/superbutton-go/internal/logger"
	"github.com/superbutton/superbutton-go/internal/observability"
	"github.com/superbutton/superbutton-go/internal/sandbox"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		sandbox.Module,
	)
	app.Run()
}
