package history

import (
	"errors"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/factory"
	corehistory "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/history"
)

// init registers built-in history stores.
func init() {
	_ = corehistory.RegisterStore("nop", func(map[string]any) (corehistory.Store, error) {
		return corehistory.NopStore{}, nil
	})

	_ = corehistory.RegisterStore("csv", func(conf map[string]any) (corehistory.Store, error) {
		path, err := pathFrom(conf)
		if err != nil {
			return nil, err
		}
		return NewCSVStore(path)
	})

	_ = corehistory.RegisterStore("sqlite", func(conf map[string]any) (corehistory.Store, error) {
		path, err := pathFrom(conf)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(path)
	})
}

func pathFrom(conf map[string]any) (string, error) {
	var c struct {
		Path string `json:"path"`
	}
	if err := factory.Decode(conf, &c); err != nil {
		return "", err
	}
	if c.Path == "" {
		return "", errors.New("history: store requires a path")
	}
	return c.Path, nil
}
