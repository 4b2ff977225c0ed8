package command

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/calebcase/numtext"
)

var (
	tableType      *string
	tablePrecision *int
)

// Table writes a value in every standard format that applies to its type.
var Table = &cobra.Command{
	Use:     "table VALUE",
	Short:   "Show a value in every standard format.",
	Example: "numtext table --culture en-IN 123456789.125",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer Error.WrapP(&err)

		v, err := parseValue(args[0], *tableType)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("Format", "Culture", "Output")

		for _, kind := range []byte(kinds(v)) {
			specifier := string(kind)
			if *tablePrecision >= 0 && kind != 'R' {
				specifier += strconv.Itoa(*tablePrecision)
			}

			s, err := numtext.FormatStandard(v, kind, *tablePrecision, nf)
			if err != nil {
				return err
			}

			err = table.Append([]string{specifier, nf.Name, s})
			if err != nil {
				return err
			}
		}

		return table.Render()
	},
}

func init() {
	tableType = typeFlag(Table.Flags())
	tablePrecision = Table.Flags().Int("precision", -1, "precision of every format, -1 for the defaults")

	Root.AddCommand(Table)
}
