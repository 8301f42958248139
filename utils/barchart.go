package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-forecast/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1  = "#d73027"
	ColorRank2  = "#f46d43"
	ColorRank3  = "#fee08b"
	ColorRank4  = "#abdda4"
	ColorRank5  = "#66c2a5"
	ColorFailed = "#7f7f7f"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

func DrawForecastChart(accountId string, results []model.ForecastResult) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🔮  AWS COST FORECAST"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountId))
	if len(results) > 0 {
		fmt.Printf(" Window: %s → %s\n", results[0].Window.Start, results[0].Window.End)
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	fmt.Println()
	fmt.Println(RenderForecastChart(results))
}

func RenderForecastChart(results []model.ForecastResult) string {
	bc := barchart.New(100, 20)

	indexedColors := assignRankedColors(results)

	for idx, result := range results {
		bc.Push(barchart.BarData{
			Label: getBarLabel(result),
			Values: []barchart.BarValue{
				{
					Name:  string(result.Service),
					Value: result.Amount.InexactFloat64(),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	bc.Draw()

	return lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)
}

func getBarLabel(result model.ForecastResult) string {
	if result.Failed() {
		return fmt.Sprintf("%s: n/a", result.Service)
	}

	return fmt.Sprintf("%s: %s %s", result.Service, result.Amount.StringFixed(2), result.Unit)
}

// assignRankedColors colours the most expensive forecast red and failed
// forecasts grey.
func assignRankedColors(results []model.ForecastResult) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5}

	order := make([]int, len(results))
	for i := range results {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return results[order[i]].Amount.GreaterThan(results[order[j]].Amount)
	})

	resultColors := make([]string, len(results))
	for rank, originalIndex := range order {
		color := palette[len(palette)-1]
		if rank < len(palette) {
			color = palette[rank]
		}
		if results[originalIndex].Failed() {
			color = ColorFailed
		}
		resultColors[originalIndex] = color
	}

	return resultColors
}
