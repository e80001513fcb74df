package config

import (
	"os"
	"path/filepath"
	"testing"

	internal "github.com/dirforge/dirindex/dirindex"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests the config package functionality
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
	origDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	viper.Reset()

	// Save original directory
	var err error
	suite.origDir, err = os.Getwd()
	require.NoError(suite.T(), err)

	// Create temporary directory for testing
	tempDir, err := os.MkdirTemp("", "dirindex-config-test-*")
	require.NoError(suite.T(), err)
	suite.tempDir = tempDir

	// Change to temp directory
	err = os.Chdir(tempDir)
	require.NoError(suite.T(), err)
}

func (suite *ConfigTestSuite) TearDownTest() {
	// Change back to original directory
	if suite.origDir != "" {
		os.Chdir(suite.origDir)
	}

	// Clean up temporary directory
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *ConfigTestSuite) TestLoadConfigWithDefaults() {
	// Load config without config file (should use defaults)
	cfg, err := LoadConfig("")

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	assert.Equal(suite.T(), ".", cfg.DirIndex.OutputDir)
	assert.Equal(suite.T(), []string{"json", "xml", "txt"}, cfg.DirIndex.Formats)
	assert.Equal(suite.T(), internal.DefaultBuilderBatchSize, cfg.DirIndex.BuilderBatchSize)
	assert.Equal(suite.T(), internal.DefaultSerializerBatchSize, cfg.DirIndex.SerializerBatchSize)
	assert.Equal(suite.T(), "", cfg.DirIndex.IgnoreFile)
	assert.Equal(suite.T(), internal.DefaultServerAddr, cfg.DirIndex.Server.Addr)
}

func (suite *ConfigTestSuite) TestLoadConfigFromFile() {
	configYAML := `dirindex:
  outputDir: /tmp/indexes
  formats:
    - json
    - txt
  builderBatchSize: 50
  server:
    addr: ":9090"
`
	configPath := filepath.Join(suite.tempDir, "config.yaml")
	require.NoError(suite.T(), os.WriteFile(configPath, []byte(configYAML), 0o644))

	cfg, err := LoadConfig(configPath)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "/tmp/indexes", cfg.DirIndex.OutputDir)
	assert.Equal(suite.T(), []string{"json", "txt"}, cfg.DirIndex.Formats)
	assert.Equal(suite.T(), 50, cfg.DirIndex.BuilderBatchSize)
	assert.Equal(suite.T(), ":9090", cfg.DirIndex.Server.Addr)

	// Unset fields fall back to defaults.
	assert.Equal(suite.T(), internal.DefaultSerializerBatchSize, cfg.DirIndex.SerializerBatchSize)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidFile() {
	configPath := filepath.Join(suite.tempDir, "config.yaml")
	require.NoError(suite.T(), os.WriteFile(configPath, []byte("dirindex: ["), 0o644))

	_, err := LoadConfig(configPath)
	assert.Error(suite.T(), err)
}
