package handlers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventory "github.com/inhuman/yc-inventory"
	"github.com/inhuman/yc-inventory/internal/config"
)

type fakeProvider struct {
	zones  []string
	hosts  []inventory.Host
	closed bool
}

func (f *fakeProvider) ListAvailabilityZones(context.Context) ([]string, error) {
	return f.zones, nil
}

func (f *fakeProvider) ListHosts(context.Context) ([]inventory.Host, error) {
	return f.hosts, nil
}

func (f *fakeProvider) Close(context.Context) error {
	f.closed = true
	return nil
}

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("TF_VAR_yc_iam_token", "t1.test")
	t.Setenv("TF_VAR_yc_folder_id", "b1gtest")
	t.Setenv("YC_TOKEN", "")
	t.Setenv("YC_FOLDER_ID", "")
}

func useFake(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{
		zones: []string{"ru_central1_a"},
		hosts: []inventory.Host{{
			Name:      "web_1",
			Zone:      "ru_central1_a",
			FQDN:      "web1.internal",
			Labels:    map[string]string{"ansible_group": "web"},
			IPAddress: "1.2.3.4",
		}},
	}
	restore := SetProviderFactory(func(_ context.Context, cfg *config.Config) (Provider, error) {
		assert.Equal(t, "t1.test", cfg.IAMToken)
		assert.Equal(t, "b1gtest", cfg.FolderID)
		return p, nil
	})
	t.Cleanup(restore)
	return p
}

func TestList(t *testing.T) {
	setCredentials(t)
	p := useFake(t)

	var out bytes.Buffer
	require.NoError(t, List(context.Background(), &out))

	assert.JSONEq(t, `{
		"all": {"children": ["ru_central1_a", "web"]},
		"ru_central1_a": {"hosts": ["web_1"]},
		"web": {"hosts": ["web_1"]},
		"_meta": {"hostvars": {"web_1": {"ansible_host": "1.2.3.4"}}}
	}`, out.String())
	assert.True(t, p.closed)
}

func TestHost(t *testing.T) {
	setCredentials(t)
	useFake(t)

	tests := []struct {
		name     string
		expected string
	}{
		{name: "web_1", expected: `{"ansible_host":"1.2.3.4"}` + "\n"},
		{name: "nope", expected: "null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Host(context.Background(), &out, tt.name))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestMissingCredentialsSkipProvider(t *testing.T) {
	t.Setenv("TF_VAR_yc_iam_token", "")
	t.Setenv("YC_TOKEN", "")
	t.Setenv("TF_VAR_yc_folder_id", "")
	t.Setenv("YC_FOLDER_ID", "")

	called := false
	t.Cleanup(SetProviderFactory(func(context.Context, *config.Config) (Provider, error) {
		called = true
		return &fakeProvider{}, nil
	}))

	var out bytes.Buffer
	err := List(context.Background(), &out)

	var authErr *config.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Contains(t, err.Error(), "yc iam create-token")
	assert.False(t, called)
	assert.Empty(t, out.String())
}

func TestExport(t *testing.T) {
	setCredentials(t)
	useFake(t)

	t.Run("stdout", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Export(context.Background(), &out, "-"))

		var parsed inventory.YmlInventory
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &parsed))
		assert.Equal(t, inventory.YmlHost{"ansible_host": "1.2.3.4"},
			parsed["all"].Children["web"].Hosts["web_1"])
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "inventory.yml")

		var out bytes.Buffer
		require.NoError(t, Export(context.Background(), &out, path))
		assert.Empty(t, out.String())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "ru_central1_a:")
		assert.Contains(t, string(data), "ansible_host: 1.2.3.4")
	})
}
