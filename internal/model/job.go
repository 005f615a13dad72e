package model

// Workers defines number of workers per stage
type Workers struct {
	Validation int `json:"validation"`
	Metrics    int `json:"metrics"`
}

// ConcurrencyConfig defines extra concurrency and job options
type ConcurrencyConfig struct {
	Workers           Workers `json:"workers"`
	ChannelBufferSize int     `json:"channelBufferSize"`
	JobTimeout        string  `json:"jobTimeout"` // e.g., "5m"
}

// Export defines where the run's reports are written
type Export struct {
	Dir        string `json:"dir"`        // base output directory
	ReportFile string `json:"reportFile"` // e.g., report.md
	JSONFile   string `json:"jsonFile"`   // e.g., results.json
}

// JobSpec defines the entire pipeline run configuration. The schema and the
// metric formulas are fixed; only execution options are configurable.
type JobSpec struct {
	Input       string            `json:"input"` // CSV file path, or "-" for stdin
	Export      *Export           `json:"export,omitempty"`
	Concurrency ConcurrencyConfig `json:"concurrency"`
	Logging     bool              `json:"logging"`
}
