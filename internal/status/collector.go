// Package status gathers and renders diagnostics about the completion
// environment.
package status

import (
	"os/exec"
	"time"

	"github.com/elasticomp/elasticomp/internal/elasticluster"
	"github.com/elasticomp/elasticomp/internal/setup"
)

// Data holds everything the status view renders.
type Data struct {
	Version string
	Shell   string

	HookInstalled bool
	RCFile        string

	ConfigPath string // empty when built-in defaults are in effect

	Binary     string
	BinaryPath string // resolved path, empty when not on PATH

	StorageDir string
	Clusters   []string

	CachePath  string
	CacheCount int
	CacheAge   time.Duration
	CacheFresh bool
}

// Params configures collection.
type Params struct {
	Version    string
	Shell      string
	ConfigPath string
	Binary     string
	StorageDir string
	Client     *elasticluster.Client
	Cache      *elasticluster.TemplateCache
}

// Collect gathers status data. Collection never fails: anything that
// cannot be determined renders as absent.
func Collect(p Params) *Data {
	data := &Data{
		Version:    p.Version,
		Shell:      p.Shell,
		ConfigPath: p.ConfigPath,
		Binary:     p.Binary,
		StorageDir: p.StorageDir,
	}

	if installed, err := setup.IsHookInstalled(p.Shell); err == nil {
		data.HookInstalled = installed
	}
	if rcFile, err := setup.GetRCFilePath(p.Shell); err == nil {
		data.RCFile = rcFile
	}

	if path, err := exec.LookPath(p.Binary); err == nil {
		data.BinaryPath = path
	}

	if p.Client != nil {
		data.Clusters = p.Client.Clusters()
	}

	if p.Cache != nil {
		data.CachePath = p.Cache.Path()
		data.CacheCount, data.CacheAge, data.CacheFresh = p.Cache.Info()
	}

	return data
}
