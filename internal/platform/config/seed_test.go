package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDirectorySeed_YAML(t *testing.T) {
	path := writeSeed(t, "directory.yaml", `
organizations:
  - id: bank
    name: Trade Bank
    isBank: true
  - id: seller-1
    name: Acme Exports
    taxID: TX-1
    isSeller: true
users:
  - id: u-bank
    organizationID: bank
    name: Officer
    role: BANK_ADMIN
`)

	seed, err := LoadDirectorySeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Organizations, 2)
	assert.True(t, seed.Organizations[0].IsBank)
	assert.Equal(t, "TX-1", seed.Organizations[1].TaxID)
	assert.True(t, seed.Organizations[1].IsSeller)
	require.Len(t, seed.Users, 1)
	assert.Equal(t, "bank", seed.Users[0].OrganizationID)
	assert.Equal(t, "BANK_ADMIN", seed.Users[0].Role)
}

func TestLoadDirectorySeed_RejectsUserWithoutOrganization(t *testing.T) {
	path := writeSeed(t, "directory.json", `{"users": [{"id": "u1"}]}`)

	_, err := LoadDirectorySeed(path)
	assert.Error(t, err)
}

func TestLoadDirectorySeed_MissingFile(t *testing.T) {
	_, err := LoadDirectorySeed(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
