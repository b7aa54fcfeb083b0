package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SeedOrganization is one organization entry of a directory seed file.
type SeedOrganization struct {
	ID       string `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	TaxID    string `mapstructure:"taxID"`
	IsBank   bool   `mapstructure:"isBank"`
	IsBuyer  bool   `mapstructure:"isBuyer"`
	IsSeller bool   `mapstructure:"isSeller"`
}

// SeedUser is one user entry of a directory seed file.
type SeedUser struct {
	ID             string `mapstructure:"id"`
	OrganizationID string `mapstructure:"organizationID"`
	Name           string `mapstructure:"name"`
	Role           string `mapstructure:"role"`
}

// DirectorySeed lists the organizations and users preloaded into the in-memory directory.
type DirectorySeed struct {
	Organizations []SeedOrganization `mapstructure:"organizations"`
	Users         []SeedUser         `mapstructure:"users"`
}

// LoadDirectorySeed reads a YAML or JSON seed file; the format follows the extension.
func LoadDirectorySeed(path string) (*DirectorySeed, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read directory seed %s: %w", path, err)
	}

	var seed DirectorySeed
	if err := v.Unmarshal(&seed); err != nil {
		return nil, fmt.Errorf("failed to decode directory seed %s: %w", path, err)
	}
	for i, org := range seed.Organizations {
		if org.ID == "" {
			return nil, fmt.Errorf("directory seed %s: organization %d has no id", path, i)
		}
	}
	for i, u := range seed.Users {
		if u.ID == "" || u.OrganizationID == "" {
			return nil, fmt.Errorf("directory seed %s: user %d needs id and organizationID", path, i)
		}
	}
	return &seed, nil
}
