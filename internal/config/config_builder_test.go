// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.SessionSignKey = "secret"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without a sign key is rejected.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{OwnerID: 7}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.App.OwnerID)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.App.SessionSignKey)
	assert.Equal(t, DefaultSessionDuration, cfg.App.SessionDuration)
}

func TestBuild_DefaultsWithSignKey(t *testing.T) {
	b := newConfigBuilder(nil).withDefaults()
	b.configs = append(b.configs, &StructuredConfig{App: App{SessionSignKey: "k"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, int64(DefaultOwnerID), cfg.App.OwnerID)
	assert.Equal(t, DefaultPasswordIterations, cfg.App.PasswordIterations)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_SESSION_SIGN_KEY", "env-key")
	t.Setenv("APP_OWNER_ID", "3")
	t.Setenv("STORAGE_DB_DSN", "postgres://u:p@localhost:5432/blog")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "5s")

	b := newConfigBuilder(nil)
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-key", b.configs[0].App.SessionSignKey)
	assert.Equal(t, int64(3), b.configs[0].App.OwnerID)
	assert.Equal(t, "postgres://u:p@localhost:5432/blog", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, b.configs[0].Server.RequestTimeout)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_OWNER_ID", "not-a-number")

	b := newConfigBuilder(nil)
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-a", "127.0.0.1:8081", "-d", "test.db", "-owner-id", "2"})
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "127.0.0.1:8081", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "test.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, int64(2), b.configs[0].App.OwnerID)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder([]string{"-unknown"})
	b.withFlags()

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.SessionSignKey = "json-key"
	payload.App.SessionDuration = Duration(time.Hour)
	payload.Storage.DB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-key", b.configs[1].App.SessionSignKey)
	assert.Equal(t, time.Hour, b.configs[1].App.SessionDuration)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestFullChain_JSONOverridesFlags checks the whole priority order.
func TestFullChain_JSONOverridesFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.OwnerID = 9
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder([]string{"-session-sign-key", "flag-key", "-owner-id", "4", "-c", path}).
		withDefaults().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.SessionSignKey)
	assert.Equal(t, int64(9), cfg.App.OwnerID)
}
