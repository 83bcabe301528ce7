package opts

import (
	"github.com/gzm55/propreplace/pkg/config"
	"github.com/gzm55/propreplace/pkg/report"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config   *config.Config
	Reporter *report.Reporter
}
