package utils

import (
	"fmt"

	"github.com/elC0mpa/aws-forecast/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawForecastTable(accountId string, results []model.ForecastResult) {
	fmt.Println(RenderForecastTable(accountId, results))
}

func RenderForecastTable(accountId string, results []model.ForecastResult) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{
		"Account ID",
		"Service",
		"Window",
		"Forecast",
		"Status",
	})

	rows := make([]table.Row, 0, len(results))
	for _, result := range results {
		rows = append(rows, populateForecastRow(result))
	}

	if len(rows) > 0 {
		rows[len(rows)/2][0] = text.FgBlue.Sprintf("%s", accountId)
	}

	tw.AppendRows(rows)
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number:       1,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number: 4,
			Align:  text.AlignRight,
		},
	})

	return tw.Render()
}

func populateForecastRow(result model.ForecastResult) table.Row {
	row := make(table.Row, 5)

	window := fmt.Sprintf("%s → %s", result.Window.Start, result.Window.End)
	amount := fmt.Sprintf("%s %s", result.Amount.StringFixed(2), result.Unit)

	row[0] = ""
	row[1] = text.FgGreen.Sprintf("%s", result.Service)
	row[2] = window
	row[3] = text.FgHiGreen.Sprintf("%s", amount)
	row[4] = text.FgGreen.Sprint("ok")

	if result.Failed() {
		row[1] = text.FgRed.Sprintf("%s", result.Service)
		row[3] = text.FgHiYellow.Sprintf("%s", amount)
		row[4] = text.FgRed.Sprint("unavailable")
	}

	return row
}
