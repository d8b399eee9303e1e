package config

import (
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// flagLayer is the koanf provider for the command line. It only yields
// setting keys (see Defaults); the --config flag is consumed by Load itself.
//
// An explicitly set flag always wins. A flag left at its default only fills
// a key no earlier layer provided.
type flagLayer struct {
	flags *pflag.FlagSet
	below *koanf.Koanf
}

func newFlagLayer(flags *pflag.FlagSet, below *koanf.Koanf) *flagLayer {
	return &flagLayer{flags: flags, below: below}
}

// Read converts each contributing flag to the Go type of its default.
func (l *flagLayer) Read() (map[string]interface{}, error) {
	defaults := Defaults()
	flat := make(map[string]interface{})

	var err error
	l.flags.VisitAll(func(f *pflag.Flag) {
		def, isSetting := defaults[f.Name]
		if err != nil || !isSetting {
			return
		}
		if !f.Changed && l.below != nil && l.below.Exists(f.Name) {
			return
		}

		var v interface{}
		if v, err = typedLike(def, f.Value.String()); err != nil {
			err = errors.Wrapf(ErrInvalidValue, "--%s: %v", f.Name, err)

			return
		}
		flat[f.Name] = v
	})
	if err != nil {
		return nil, err
	}

	return maps.Unflatten(flat, "."), nil
}

// ReadBytes is not supported; flags are already structured.
func (l *flagLayer) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: flag layer has no raw form")
}

// typedLike converts s to the type of def.
func typedLike(def interface{}, s string) (interface{}, error) {
	switch def.(type) {
	case bool:
		return cast.ToBoolE(s)
	case int:
		return cast.ToIntE(s)
	case int64:
		return cast.ToInt64E(s)
	default:
		return s, nil
	}
}
