package config

// Auditfile represents the structure of the pacaudit.yaml configuration file.
// Absent keys keep their defaults.
type Auditfile struct {
	// Blacklist replaces the default prefixes when present; an empty list disables it.
	Blacklist   *[]string       `yaml:"blacklist"`
	UnitDirs    []string        `yaml:"unitDirs"`
	Interpreter *InterpreterDTO `yaml:"interpreter"`
	Workers     int             `yaml:"workers"`
}

// InterpreterDTO represents the interpreter check settings in the configuration.
type InterpreterDTO struct {
	Package   string `yaml:"package"`
	LibRoot   string `yaml:"libRoot"`
	DirPrefix string `yaml:"dirPrefix"`
}
