package cmd

import (
	"io"
	"strconv"
	"strings"

	"arcc/walk"

	"github.com/olekukonko/tablewriter"
)

// displaySummary prints a table of the functions in the compiled output.
func displaySummary(w io.Writer, out *walk.Output) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Function", "ID", "Returns", "Parameters"})

	for _, buf := range out.Functions {
		table.Append([]string{
			buf.Name,
			strconv.Itoa(buf.ID),
			buf.ReturnLabel,
			strings.Join(buf.ParamLabels, ", "),
		})
	}

	table.Render()
}
