// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from its overlay layers:
//
//   • built-in defaults                   – confmap, lowest precedence,
//   • `conf/analytics.yaml`               – optional static file,
//   • optional `.env`                     – dotenv values,
//   • `AV_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// a field is malformed.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.  The `yaml` tags exist
//     only for the debug dump.
//   • A supplied list replaces its default wholesale.  Koanf merges maps
//     key by key but never merges slices element by element, which is
//     exactly the behaviour we want for `single_vars`.
//   • Oxford commas, two spaces after periods.

package config

import "slices"

//
// Analytics section
//

// Analytics controls which custom variables are computed and where they go.
//
// Debug swaps both tracker integrations for a diagnostic <head> comment.
// SingleVars lists the optional fields reported on single-item pages:
// author, date, comments, and taxonomy names exactly as the host registers
// them (category, post_tag, post_format).  "tag" is not an alias of
// post_tag.
type Analytics struct {
	Debug      bool     `koanf:"debug"       yaml:"debug"`
	SingleVars []string `koanf:"single_vars" yaml:"single_vars" validate:"dive,required"`
}

// Includes reports whether id is listed in SingleVars.
func (a Analytics) Includes(id string) bool {
	return slices.Contains(a.SingleVars, id)
}

//
// HTTP section
//

// HTTP holds web-server tunables for the reference host.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" yaml:"listen_addr" validate:"required,hostname_port"`
	Tracker    string `koanf:"tracker"     yaml:"tracker"     validate:"oneof=push direct"`
	TrackingID string `koanf:"tracking_id" yaml:"tracking_id"`
}

//
// Database section
//

// Database holds the content database DSN.  Empty means "run without
// storage"; single-item pages then answer 404.
type Database struct {
	DSN string `koanf:"dsn" yaml:"-"`
}

//
// Log section
//

// Log controls the rotating file logger.
type Log struct {
	Dir string `koanf:"dir" yaml:"dir"`
	Tee bool   `koanf:"tee" yaml:"tee"`
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads.
type Config struct {
	Analytics Analytics `koanf:"analytics"`
	HTTP      HTTP      `koanf:"http"`
	Database  Database  `koanf:"database"`
	Log       Log       `koanf:"log"`
}
