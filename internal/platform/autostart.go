package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Service registers the application with the OS login items.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
	AutostartEnabled(appName string) (bool, error)
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// Autostart applies the launch-at-login preference for one executable.
type Autostart struct {
	Service  Service
	AppName  string
	ExecPath string
}

// NewAutostart targets the running executable.
func NewAutostart(appName string) (*Autostart, error) {
	execPath, err := CurrentExecutable()
	if err != nil {
		return nil, err
	}
	return &Autostart{Service: NewService(), AppName: appName, ExecPath: execPath}, nil
}

// SetAutoStart registers or removes the login item. Removing an entry that
// does not exist is not an error.
func (autostart *Autostart) SetAutoStart(enabled bool) error {
	if enabled {
		return autostart.Service.EnableAutostart(autostart.AppName, autostart.ExecPath)
	}
	return autostart.Service.DisableAutostart(autostart.AppName)
}

// CurrentExecutable returns the resolved path of the running binary.
func CurrentExecutable() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return execPath, nil
}

// entryName turns an app name into a lowercase, dash-separated file stem.
func entryName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "workrest"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
