package config

// DefaultFileName is the configuration file looked up when a directory is given.
const DefaultFileName = "cxpack.yaml"

// Packagefile represents the structure of the cxpack.yaml configuration file.
type Packagefile struct {
	DestDir      string    `yaml:"destDir"`
	DestFileName string    `yaml:"destFileName"`
	SkipCleanUp  bool      `yaml:"skipCleanUp"`
	Parallelism  int       `yaml:"parallelism"`
	Items        []ItemDTO `yaml:"items"`
}

// ItemDTO represents a provisioning item definition in the configuration.
type ItemDTO struct {
	Type               string   `yaml:"type"`
	Name               string   `yaml:"name"`
	EntryFile          string   `yaml:"entryFile"`
	Icon               string   `yaml:"icon"`
	BuiltSources       string   `yaml:"builtSources"`
	ModelXML           string   `yaml:"modelXml"`
	Locales            []string `yaml:"locales"`
	BuiltIndexFileName string   `yaml:"builtIndexFileName"`
	LocaleLayout       string   `yaml:"localeLayout"`
}
