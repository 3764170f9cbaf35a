package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/seqstat/internal/config"
	"github.com/ytget/seqstat/internal/logger"
	"github.com/ytget/seqstat/internal/sequence"
	"github.com/ytget/seqstat/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.seqstat"
	AppName = "SeqStat"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	log := logger.NewConsole(logger.ParseLevel(settings.GetLogLevel()))
	log.Info().Str("version", version).Msg(AppName + " starting")

	generator, err := sequence.NewGenerator(settings.GetRandomRange())
	if err != nil {
		log.Warn().Err(err).Msg("falling back to default random range")
		generator, _ = sequence.NewGenerator(sequence.DefaultMin, sequence.DefaultMax)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, generator, log)

	if settings.GetStartFullscreen() {
		myWindow.SetFullScreen(true)
	}

	// Show and run
	myWindow.ShowAndRun()
}
