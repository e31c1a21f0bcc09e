package history

import "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/factory"

var storeRegistry = factory.NewRegistry[Store]()

// RegisterStore adds a history store factory identified by name.
func RegisterStore(name string, f factory.Factory[Store]) error {
	return storeRegistry.Register(name, f)
}

// NewStore creates a Store from the provided configuration.
// A zero-type config selects the no-op store.
func NewStore(cfg factory.ModuleConfig) (Store, error) {
	if cfg.Type == "" {
		return NopStore{}, nil
	}
	return storeRegistry.Create(cfg)
}
