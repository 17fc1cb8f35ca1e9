package main

import (
	"github.com/fsdevblog/tagmark/internal/app"
	"github.com/fsdevblog/tagmark/internal/config"
)

func main() {
	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))

	a.Logger.Infof("Starting server on %s", appConf.ServerAddress)
	if err := a.Run(); err != nil {
		panic(err)
	}
}
