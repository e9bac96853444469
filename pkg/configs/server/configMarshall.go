package server

type Marshalled[S any] interface {
	trySeal(string) S
}

// seal marshalled object.
//
// this function CAN CAUSE PANIC if misconfiguration is found.
//
// All types named `pkg/configs/server.XxxMarshall` are `Marshalled[*Xxx]` .
func TrySeal[S any](conf Marshalled[S]) S {
	return conf.trySeal("(root)")
}

type ServerConfigMarshall struct {
	Port     int32                 `yaml:"port"`
	Database string                `yaml:"database"`
	Import   *ImportConfigMarshall `yaml:"import,omitempty"`
}

var _ Marshalled[*ServerConfig] = &ServerConfigMarshall{}

func (s *ServerConfigMarshall) trySeal(path string) *ServerConfig {
	imports := s.Import
	if imports == nil {
		imports = &ImportConfigMarshall{}
	}
	return &ServerConfig{
		port:     required(s.Port, path+".port"),
		database: required(s.Database, path+".database"),
		imports:  imports.trySeal(path + ".import"),
	}
}

type ImportConfigMarshall struct {
	BatchSize    int  `yaml:"batchSize,omitempty"`
	TrimOutliers bool `yaml:"trimOutliers,omitempty"`
}

func (i *ImportConfigMarshall) trySeal(path string) *ImportConfig {
	batchSize := i.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &ImportConfig{
		batchSize:    batchSize,
		trimOutliers: i.TrimOutliers,
	}
}

func required[T comparable](v T, path string) T {
	if v == *new(T) {
		panic(path + " is required")
	}
	return v
}
