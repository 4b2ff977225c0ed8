package command

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/numtext/culture"
	"github.com/calebcase/numtext/internal/log"
)

// Error is the class of errors returned by the commands.
var Error = errs.Class("numtext")

var (
	logFlags *log.Flags

	// nf is the number format selected by --culture and --config.
	nf *culture.NumberFormat

	Root = &cobra.Command{
		Use:   "numtext",
		Short: "numtext formats numbers as locale aware text.",
		Long: "`numtext` formats integers, floating point and decimal values with standard\n" +
			"format specifiers (C, F, N, E, G, P, D, X, R) and picture formats such as\n" +
			"`#,##0.00`, and reads decimal text back into exact IEEE-754 bit patterns.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			defer Error.WrapP(&err)

			err = logFlags.Init()
			if err != nil {
				return err
			}

			fs := cmd.Root().PersistentFlags()

			v := viper.New()

			err = v.BindPFlag("base", fs.Lookup("culture"))
			if err != nil {
				return err
			}

			path, err := fs.GetString("config")
			if err != nil {
				return err
			}

			if path != "" {
				v.SetConfigFile(path)
			}

			nf, err = culture.FromViper(v)

			return err
		},
	}
)

func init() {
	fs := Root.PersistentFlags()

	logFlags = log.RegisterFlags(fs)

	fs.String("culture", "", "culture name (BCP 47 tag) the number format starts from: "+strings.Join(culture.Names(), ", "))
	fs.String("config", "", "file overriding number format fields (yaml, json or toml)")
}
