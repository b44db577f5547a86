//go:build !console

package main

import (
	"fmt"

	webview "github.com/webview/webview_go"
)

// runEmbeddedUI starts the web server and opens an embedded browser window
func runEmbeddedUI(configFile string) error {
	config, err := loadOrDefaultConfig(configFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	ws := NewWebServer(config, "localhost:0")

	url, cleanup, err := ws.StartForEmbedded()
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer cleanup()

	w := webview.New(false)
	defer w.Destroy()

	w.SetTitle("Rice Husk Circular Economy Simulator")
	w.SetSize(1100, 700, webview.HintNone)
	w.Navigate(url)

	// Run blocks until window is closed
	w.Run()

	return nil
}

// runGUI starts the graphical user interface (uses embedded browser)
func runGUI(configFile string) error {
	return runEmbeddedUI(configFile)
}
