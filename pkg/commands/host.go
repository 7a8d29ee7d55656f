package commands

import (
	"encoding/json"

	"github.com/otomatty/shinsei/pkg/appinfo"
	"github.com/otomatty/shinsei/pkg/hostinfo"
	"github.com/otomatty/shinsei/pkg/paths"
)

type envVarArgs struct {
	Name string `json:"name"`
}

// RegisterHost registers the application metadata and host environment
// commands the UI shell queries at startup.
func RegisterHost(r *Registry, p paths.Paths) {
	r.Register("get_app_info", func(json.RawMessage) (interface{}, error) {
		return appinfo.Get(), nil
	})

	r.Register("get_version_info", func(json.RawMessage) (interface{}, error) {
		return appinfo.GetVersion(), nil
	})

	r.Register("get_home_path", func(json.RawMessage) (interface{}, error) {
		return hostinfo.HomePath()
	})

	r.Register("get_user_data_path", func(json.RawMessage) (interface{}, error) {
		return p.AppDataDir(), nil
	})

	r.Register("get_config_path", func(json.RawMessage) (interface{}, error) {
		return p.ConfigDir(), nil
	})

	r.Register("get_cache_path", func(json.RawMessage) (interface{}, error) {
		return p.CacheDir(), nil
	})

	r.Register("get_log_path", func(json.RawMessage) (interface{}, error) {
		return p.LogFilePath(), nil
	})

	r.Register("get_env_var", func(raw json.RawMessage) (interface{}, error) {
		var args envVarArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		value, ok := hostinfo.EnvVar(args.Name)
		if !ok {
			return nil, nil
		}
		return value, nil
	})

	r.Register("get_hostname", func(json.RawMessage) (interface{}, error) {
		return hostinfo.Hostname()
	})

	r.Register("get_pid", func(json.RawMessage) (interface{}, error) {
		return hostinfo.PID(), nil
	})

	r.Register("get_os_info", func(json.RawMessage) (interface{}, error) {
		return hostinfo.GetOsInfo(), nil
	})
}
