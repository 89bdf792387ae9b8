package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tiendadam/storepanel/config"
	"github.com/tiendadam/storepanel/internal/app"
	"github.com/tiendadam/storepanel/internal/console"
)

var configFile = flag.String("c", "storepanel.yml", "configuration file")

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "storepanel:", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	application.InitLogger()
	defer application.Release()

	panel := console.NewPanel(application, os.Stdin, os.Stdout)
	panel.Run()
}
