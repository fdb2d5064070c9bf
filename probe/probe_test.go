package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railyard-cli/railyard/errors"
)

func testProber(goos string) *Prober {
	return &Prober{
		logger: zap.NewNop().Sugar(),
		goos:   goos,
		lookPath: func(string) (string, error) {
			return "/usr/bin/fake", nil
		},
		runOutput: func(context.Context, string, ...string) (string, error) {
			return "27.1.1", nil
		},
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"linux", PlatformLinux},
		{"darwin", PlatformMacOS},
		{"windows", PlatformWindows},
		{"plan9", PlatformUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, testProber(tt.goos).DetectPlatform(), "goos %s", tt.goos)
	}
}

func TestCheckPlatformRejectsWindows(t *testing.T) {
	err := testProber("windows").CheckPlatform()
	require.Error(t, err)
	assert.True(t, errors.IsEnvironmentUnavailable(err))
	// Remediation guidance must mention the compatibility layer
	assert.Contains(t, errors.FlattenHints(err), "WSL2")

	assert.NoError(t, testProber("linux").CheckPlatform())
	assert.NoError(t, testProber("darwin").CheckPlatform())
}

func TestMatchHostOwnership(t *testing.T) {
	assert.True(t, testProber("linux").MatchHostOwnership())
	assert.True(t, testProber("darwin").MatchHostOwnership())
	assert.False(t, testProber("windows").MatchHostOwnership())
	assert.False(t, testProber("plan9").MatchHostOwnership())
}

func TestCheckDockerMissing(t *testing.T) {
	p := testProber("linux")
	p.lookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	err := p.CheckDocker(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsEnvironmentUnavailable(err))
	assert.Contains(t, errors.FlattenHints(err), "docker")
}

func TestCheckDockerDaemonDown(t *testing.T) {
	p := testProber("linux")
	p.runOutput = func(context.Context, string, ...string) (string, error) {
		return "", errors.New("Cannot connect to the Docker daemon")
	}

	err := p.CheckDocker(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsEnvironmentUnavailable(err))
	assert.Contains(t, err.Error(), "daemon")
}

func TestCheckDockerHealthy(t *testing.T) {
	assert.NoError(t, testProber("linux").CheckDocker(context.Background()))
}

func TestCheckDockerUnparseableVersionStillPasses(t *testing.T) {
	p := testProber("linux")
	p.runOutput = func(context.Context, string, ...string) (string, error) {
		return "not-a-version", nil
	}
	assert.NoError(t, p.CheckDocker(context.Background()))
}

func TestCheckNodeMissing(t *testing.T) {
	p := testProber("linux")
	p.lookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	err := p.CheckNode(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsEnvironmentUnavailable(err))
	assert.Contains(t, errors.FlattenHints(err), "Node.js")
}

func TestCheckNodePresent(t *testing.T) {
	assert.NoError(t, testProber("linux").CheckNode(context.Background()))
}
