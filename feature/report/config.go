package report

// Config holds the report cache configuration.
type Config struct {
	// Backend selects where the rendered report is kept: "storage" or "file".
	Backend string `mapstructure:"backend" default:"storage"`

	// ObjectKey is the object name used by the storage backend.
	ObjectKey string `mapstructure:"object_key" default:"reports/summary.png"`

	// FilePath is the file used by the file backend.
	FilePath string `mapstructure:"file_path" default:"cache/summary.png"`
}
