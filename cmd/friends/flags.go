package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds each settings key to the named flag. A flag only wins over
// env and the settings file when it is set on the command line.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// Lookup only fails for a typo in the map above.
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}
