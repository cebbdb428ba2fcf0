package messages

// Config messages for loading and saving config.json.
const (
	// ConfigReadFmt formats config read errors.
	ConfigReadFmt      = "read config %s: %w"
	ConfigInvalidFmt   = "invalid config %s: %w"
	ConfigEncodeFmt    = "encode config: %w"
	ConfigWriteFmt     = "write config %s: %w"
	ConfigPathRequired = "config path is required"
)
