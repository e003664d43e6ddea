package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"

	"github.com/arturybak/google-coding-challenge/internal/infra/config"
)

// FileSourceConfig holds the settings of a "file" catalog source.
type FileSourceConfig struct {
	Path string `yaml:"path" mapstructure:"path" validate:"required"`
}

// FromConfig builds the video library described by the catalog source
// configuration.
func FromConfig(cfg *config.Config) (*Library, error) {
	src := cfg.Catalog.Source
	zlog.Debug().Msgf("creating catalog source: type=%s settings=%+v", src.Type, src.Settings)

	switch src.Type {
	case "builtin", "":
		return Builtin(), nil

	case "file":
		var fc FileSourceConfig
		if err := mapstructure.Decode(src.Settings, &fc); err != nil {
			return nil, errors.Wrap(err, "failed to decode settings")
		}
		if err := defaults.Set(&fc); err != nil {
			return nil, errors.Wrap(err, "failed to set defaults")
		}
		if err := validator.New().Struct(fc); err != nil {
			return nil, errors.Wrap(err, "validation failed")
		}
		return LoadFile(fc.Path)

	default:
		return nil, errors.Newf("unsupported catalog source type: %s", src.Type)
	}
}
