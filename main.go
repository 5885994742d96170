package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"fintrack/internal/config"
	"fintrack/internal/store"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--validate" {
		if err := runValidation(); err != nil {
			fmt.Println("validation failed:", err)
			os.Exit(1)
		}
		fmt.Println("validation ok")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	adapter, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer adapter.Close()

	s := store.New(adapter)
	p := tea.NewProgram(newModel(s, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
