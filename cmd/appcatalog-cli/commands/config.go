package commands

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
	"github.com/spf13/viper"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputYAML  outputFormat = "yaml"
	outputJSON  outputFormat = "json"
)

type cliConfig struct {
	APIURL  string        `mapstructure:"apiUrl"`
	Timeout time.Duration `mapstructure:"timeout"`
	Output  outputFormat  `mapstructure:"output"`
}

var runtimeConfig cliConfig

// stringToOutputFormatHook rejects unknown output formats while decoding
func stringToOutputFormatHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(outputFormat("")) {
		return data, nil
	}
	switch f := outputFormat(strings.ToLower(data.(string))); f {
	case "", outputTable:
		return outputTable, nil
	case outputYAML, outputJSON:
		return f, nil
	}
	return nil, fmt.Errorf("unknown output format %q, expected table, yaml or json", data)
}

func parseConfig(v *viper.Viper) error {
	var cfg cliConfig
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToOutputFormatHook,
	)))
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = outputTable
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = appcatalog.DefaultTimeout
	}
	cfg.APIURL = strings.TrimSuffix(cfg.APIURL, "/")
	if cfg.APIURL != "" {
		if u, err := url.Parse(cfg.APIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid api url %q", cfg.APIURL)
		}
	}
	runtimeConfig = cfg
	return nil
}

func newAPIClient() (*appcatalog.Client, error) {
	return appcatalog.NewClient(runtimeConfig.APIURL, runtimeConfig.Timeout)
}
