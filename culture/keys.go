package culture

import (
	"reflect"
	"strings"
)

// keys returns the configuration keys of NumberFormat.
func keys() []string {
	t := reflect.TypeOf(NumberFormat{})

	ks := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag, _, _ := strings.Cut(t.Field(i).Tag.Get("mapstructure"), ",")
		if tag != "" {
			ks = append(ks, tag)
		}
	}

	return ks
}
