package culture

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override configuration keys,
// e.g. NUMTEXT_CURRENCY_SYMBOL.
const EnvPrefix = "NUMTEXT"

// Load reads a number format from a configuration file. The optional key
// "base" names the culture the file's other keys override; it defaults to
// the invariant culture. Keys use the mapstructure names of NumberFormat.
func Load(path string) (nf *NumberFormat, err error) {
	defer Error.WrapP(&err)

	v := viper.New()
	v.SetConfigFile(path)

	return load(v)
}

// FromViper builds a number format from the keys already present in v.
func FromViper(v *viper.Viper) (nf *NumberFormat, err error) {
	defer Error.WrapP(&err)

	return load(v)
}

func load(v *viper.Viper) (nf *NumberFormat, err error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		err = v.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	nf, err = Lookup(v.GetString("base"))
	if err != nil {
		return nil, err
	}

	// Bind every field so environment overrides apply to keys absent from
	// the file.
	for _, key := range keys() {
		err = v.BindEnv(key)
		if err != nil {
			return nil, err
		}
	}

	err = v.Unmarshal(nf)
	if err != nil {
		return nil, err
	}

	err = nf.Validate()
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded number format", "name", nf.Name, "base", v.GetString("base"), "config", v.ConfigFileUsed())

	return nf, nil
}
