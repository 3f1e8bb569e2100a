package bootstrap

import (
	"github.com/kbukum/ssekit/config"
)

// Config is the interface constraint for application configuration types.
// Any struct that embeds config.ServiceConfig (value embedding) satisfies it
// via promoted methods. Structs that add their own ApplyDefaults or Validate
// must call through to the embedded ones.
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
