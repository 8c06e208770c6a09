package util

import (
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/config"
)

// ReadConfig fills out from defaults, the optional config file and the
// environment (log.level -> LOG_LEVEL), in increasing priority.
func ReadConfig(filePath string, out interface{}) error {
	v := viper.New()
	for k, val := range config.Defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // for nested structure
	v.AutomaticEnv()

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return err
	}

	return nil
}

// GetHost returns the network location of u, port included, the way it is
// compared for same-domain checks.
func GetHost(u string) (string, error) {
	oURL, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return oURL.Host, nil
}

// IsSameDomain reports whether u has a scheme and a host, and the host equals
// baseHost.
func IsSameDomain(u *url.URL, baseHost string) bool {
	return u.Scheme != "" && u.Host != "" && u.Host == baseHost
}
