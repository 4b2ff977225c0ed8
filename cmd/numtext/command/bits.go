package command

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/calebcase/numtext"
	"github.com/calebcase/numtext/number"
)

// Bits reads decimal text into the nearest double and shows how it formats
// back.
var Bits = &cobra.Command{
	Use:     "bits TEXT",
	Short:   "Show the digit buffer and IEEE-754 bits of decimal text.",
	Example: "numtext bits 0.1\nnumtext bits -- -1e400",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer Error.WrapP(&err)

		var b number.Buffer

		err = number.Parse(args[0], &b)
		if err != nil {
			return err
		}

		bits := numtext.ParseDigitsToDouble(&b)

		rt, err := numtext.Format(math.Float64frombits(bits), "R", nf)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "digits: %s\nbits: 0x%016x\nround trip: %s\n", b, bits, rt)

		return err
	},
}

func init() {
	Root.AddCommand(Bits)
}
