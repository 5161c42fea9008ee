package driver_test

import "concatident/internal/project"

func withAliases(aliases ...string) project.Config {
	cfg := project.DefaultConfig()
	cfg.Macros.Aliases = aliases
	return cfg
}
