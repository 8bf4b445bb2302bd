package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmocanu/vcenv/pkg/profile"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeProfiles(t, `
profiles:
  - name: embedded
    script: /opt/embedded/envsetup.sh
    args: ["arm-none-eabi", "8.1 SDK"]
  - name: plain
    script: /opt/plain/env.sh
`)

	profiles, err := profile.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []profile.Profile{
		{
			Name:   "embedded",
			Script: "/opt/embedded/envsetup.sh",
			Args:   []string{"arm-none-eabi", "8.1 SDK"},
		},
		{
			Name:   "plain",
			Script: "/opt/plain/env.sh",
		},
	}, profiles)
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	type test struct {
		name    string
		content string
		errLike string
	}

	tests := []test{
		{
			name:    "missing name",
			content: "profiles:\n  - script: /a.sh\n",
			errLike: "without a name",
		},
		{
			name:    "missing script",
			content: "profiles:\n  - name: a\n",
			errLike: "has no script",
		},
		{
			name:    "duplicate name",
			content: "profiles:\n  - name: a\n    script: /a.sh\n  - name: a\n    script: /b.sh\n",
			errLike: "duplicate profile",
		},
		{
			name:    "not yaml",
			content: "profiles: [unterminated\n",
			errLike: "failed to parse",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := profile.LoadFile(writeProfiles(t, tc.content))
			require.ErrorContains(t, err, tc.errLike)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := profile.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	t.Parallel()

	profiles := []profile.Profile{
		{Name: "a", Script: "/a.sh"},
		{Name: "b", Script: "/b.sh"},
	}

	p, ok := profile.Find(profiles, "b")
	require.True(t, ok)
	require.Equal(t, "/b.sh", p.Script)

	_, ok = profile.Find(profiles, "c")
	require.False(t, ok)
}
