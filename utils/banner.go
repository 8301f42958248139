package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

var loading *spinner.Spinner

func DrawBanner() {
	banner := figure.NewFigure("AWS Forecast", "small", true)
	fmt.Println(text.FgHiCyan.Sprint(banner.String()))
}

func StartSpinner() {
	loading = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	loading.Suffix = " Asking Cost Explorer for a forecast..."
	loading.Start()
}

// StopSpinner is safe to call when no spinner is running
func StopSpinner() {
	if loading == nil {
		return
	}

	loading.Stop()
	loading = nil
}
