// Package factory provides a small generic registry used to instantiate
// pluggable backends from configuration. A backend is named by a type string
// and carries a map of raw settings; factories decode the settings into
// typed structs and return the concrete implementation.
//
// History stores and metrics sinks are both built this way:
//
//	reg := factory.NewRegistry[history.Store]()
//	reg.Register("csv", func(conf map[string]any) (history.Store, error) {
//	    var c struct{ Dir string `json:"dir"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return NewCSVStore(c.Dir)
//	})
//	st, err := reg.Create(factory.ModuleConfig{Type: "csv", Conf: map[string]any{"dir": "out"}})
package factory
