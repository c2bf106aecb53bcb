package config

// Manifest is the structure of an ngpack.yaml file. Every path is resolved
// against the directory that holds the manifest unless it is absolute.
type Manifest struct {
	Out       string   `yaml:"out"`
	SrcRoot   string   `yaml:"srcRoot"`
	BinRoot   string   `yaml:"binRoot"`
	Readme    string   `yaml:"readme"`
	Fesm2015  []string `yaml:"fesm2015"`
	Fesm5     []string `yaml:"fesm5"`
	Bundles   []string `yaml:"bundles"`
	Srcs      []string `yaml:"srcs"`
	StampData string   `yaml:"stampData"`
	License   string   `yaml:"license"`
}
