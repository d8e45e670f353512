package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/app"
	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/errmsg"
)

func main() {
	configPath := flag.String("config", "", "configuration file (default: user config layered with ./drawer.toml)")
	contentPath := flag.String("content", "", "text or markdown file shown inside the sheet")
	initConfig := flag.Bool("init-config", false, "write the default configuration and exit")
	modal := flag.Bool("modal", false, "present the sheet modally over a dimmed background")
	flag.Parse()

	if *initConfig {
		path := *configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.WriteDefault(path); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpConfigWrite, path, err))
			os.Exit(1)
		}
		fmt.Println("Wrote", path)
		return
	}

	if os.Getenv("DRAWER_DEBUG") != "" {
		f, err := tea.LogToFile("drawer.log", "drawer")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	m := app.New(cfg, app.Options{
		ConfigPath:  *configPath,
		ContentPath: *contentPath,
		Modal:       *modal,
	})
	if err := m.StartWatching(); err != nil {
		// hot reload is optional
		m.ErrorMsg = errmsg.Format(errmsg.OpConfigWatch, err)
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}
