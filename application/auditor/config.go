package auditor

import (
	"fmt"

	"github.com/coniks-sys/coniks-merklelog/application"
	"github.com/coniks-sys/coniks-merklelog/crypto"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
	"github.com/coniks-sys/coniks-merklelog/utils"
)

// A Config contains configuration values
// which are read at initialization time from
// a TOML format configuration file.
type Config struct {
	*application.CommonConfig
	// Hasher is the identifier of a registered hasher.
	Hasher string `toml:"hasher"`
	// AllowInsecureHasher must be set to use a hasher that is
	// not cryptographically strong.
	AllowInsecureHasher bool `toml:"allow_insecure_hasher"`
	// DatabasePath is the leveldb directory of the record log,
	// relative to the config file unless absolute.
	DatabasePath string `toml:"database"`
}

var _ application.AppConfig = (*Config)(nil)

// NewConfig initializes a new auditor configuration with the default
// hasher, the given database path and logger configuration.
func NewConfig(file, encoding, dbPath string, logConfig *application.LoggerConfig) *Config {
	var conf = Config{
		CommonConfig: application.NewCommonConfig(file, encoding, logConfig),
		Hasher:       crypto.DefaultHashID,
		DatabasePath: dbPath,
	}
	return &conf
}

// Load initializes an auditor's configuration from the given file.
// It resolves the database and log paths against the location of file
// and checks that the configured hasher may be used.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = application.NewCommonConfig(file, encoding, nil)
	if err := conf.GetLoader().Decode(conf); err != nil {
		return err
	}
	if conf.Hasher == "" {
		conf.Hasher = crypto.DefaultHashID
	}
	if _, err := conf.TreeHasher(); err != nil {
		return err
	}

	if conf.DatabasePath == "" {
		return fmt.Errorf("No database configured in %s", file)
	}
	conf.DatabasePath = utils.ResolvePath(conf.DatabasePath, file)
	if conf.Logger == nil {
		conf.Logger = &application.LoggerConfig{Environment: "development"}
	}
	if conf.Logger.Path != "" {
		conf.Logger.Path = utils.ResolvePath(conf.Logger.Path, file)
	}
	return nil
}

// Save writes the configuration to its path.
// It refuses to overwrite an existing file.
func (conf *Config) Save() error {
	return conf.GetLoader().Encode(conf)
}

// TreeHasher resolves the configured hasher. Insecure hashers are only
// returned when AllowInsecureHasher is set.
func (conf *Config) TreeHasher() (hasher.TreeHasher, error) {
	if conf.AllowInsecureHasher {
		return hasher.Hasher(conf.Hasher)
	}
	return hasher.SecureHasher(conf.Hasher)
}
