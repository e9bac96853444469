package server

// ServerConfig is the sealed, read-only server configuration.
//
// To get a ServerConfig instance, use `Unmarshal` or `LoadServerConfig`.
type ServerConfig struct {
	port     int32
	database string
	imports  *ImportConfig
}

func (c *ServerConfig) Port() int32 {
	return c.port
}

// Connection string for PostgreSQL.
func (c *ServerConfig) Database() string {
	return c.database
}

func (c *ServerConfig) Import() *ImportConfig {
	return c.imports
}

// Defaults for the CSV import pipeline.
type ImportConfig struct {
	batchSize    int
	trimOutliers bool
}

// How many records go into one bulk insert. default = 1000
func (c *ImportConfig) BatchSize() int {
	return c.batchSize
}

// Whether outlying total values are dropped during cleaning. default = false
func (c *ImportConfig) TrimOutliers() bool {
	return c.trimOutliers
}
