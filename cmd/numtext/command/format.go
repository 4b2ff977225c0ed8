package command

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/calebcase/numtext"
)

var formatType *string

// Format writes a value once per format argument.
var Format = &cobra.Command{
	Use:   "format VALUE FORMAT...",
	Short: "Format a value with standard or picture formats.",
	Example: "numtext format 1234.5678 N2 '#,##0.0' E\n" +
		"numtext format --culture de-DE --type decimal -- -1234.5 C",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer Error.WrapP(&err)

		v, err := parseValue(args[0], *formatType)
		if err != nil {
			return err
		}

		for _, f := range args[1:] {
			s, err := numtext.Format(v, f, nf)
			if err != nil {
				return err
			}

			slog.Debug("formatted", "value", args[0], "type", *formatType, "format", f, "culture", nf.Name)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			if err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	formatType = typeFlag(Format.Flags())

	Root.AddCommand(Format)
}
