package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"

	"github.com/mygit-vcs/mygit/pkg/common/err"
	"github.com/mygit-vcs/mygit/pkg/common/fileops"
)

// Config is the repository configuration, persisted as JSON in the
// control directory's config file.
type Config struct {
	Core CoreConfig `json:"core"`
	User UserConfig `json:"user"`
}

// CoreConfig holds repository-level settings.
type CoreConfig struct {
	Bare          bool   `json:"bare"`
	DefaultBranch string `json:"defaultBranch"`
}

// UserConfig identifies the committer.
type UserConfig struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DefaultConfig builds the config written at init time. The user identity
// falls back to the OS username with an example.com email, matching the
// behavior of commit when no author is given.
func DefaultConfig() Config {
	name := osUsername()
	return Config{
		Core: CoreConfig{
			Bare:          false,
			DefaultBranch: DefaultBranch,
		},
		User: UserConfig{
			Name:  name,
			Email: fmt.Sprintf("%s@example.com", name),
		},
	}
}

// LoadConfig reads the repository config. A missing file yields the
// defaults rather than an error.
func (r *Repository) LoadConfig() (Config, error) {
	data, readErr := os.ReadFile(r.control.ConfigPath())
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return DefaultConfig(), nil
		}
		return Config{}, NewRepositoryError(err.CodeInternal, "load_config", "read config file", r.root.String(), readErr)
	}

	var cfg Config
	if jsonErr := json.Unmarshal(data, &cfg); jsonErr != nil {
		return Config{}, NewRepositoryError(err.CodeInvalidFormat, "load_config", "parse config file", r.root.String(), jsonErr)
	}

	return cfg, nil
}

// SaveConfig writes the repository config.
func (r *Repository) SaveConfig(cfg Config) error {
	data, jsonErr := json.MarshalIndent(cfg, "", "  ")
	if jsonErr != nil {
		return NewRepositoryError(err.CodeInternal, "save_config", "encode config", r.root.String(), jsonErr)
	}

	if writeErr := fileops.AtomicWrite(r.control.ConfigPath(), data, 0o644); writeErr != nil {
		return NewRepositoryError(err.CodeInternal, "save_config", "write config file", r.root.String(), writeErr)
	}

	return nil
}

func osUsername() string {
	if u, uErr := user.Current(); uErr == nil && u.Username != "" {
		return u.Username
	}
	return "user"
}
