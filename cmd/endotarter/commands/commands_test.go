package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/endotarter/cmd/endotarter/commands"
	"go.trai.ch/endotarter/internal/app"
	"go.trai.ch/endotarter/internal/build"
	"go.trai.ch/endotarter/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	runFunc    func(ctx context.Context, opts app.RunOptions) error
	statusFunc func(ctx context.Context, opts app.StatusOptions) error
	cleanFunc  func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context, opts app.StatusOptions) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

type jsonLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *jsonLogger) SetJSON(enable bool) { l.json = enable }

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"run", "--config", "custom.yaml", "--output-mode", "tui"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "custom.yaml", capturedOpts.ConfigPath)
		assert.Equal(t, "tui", capturedOpts.OutputMode)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "endotarter.yaml", capturedOpts.ConfigPath)
		assert.Equal(t, "auto", capturedOpts.OutputMode)
	})

	t.Run("ci forces linear output", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"run", "--ci", "-o", "tui"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "linear", capturedOpts.OutputMode)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"run"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{}, nil)
		cli.SetArgs([]string{"run", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_JSONFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := &jsonLogger{MockLogger: mocks.NewMockLogger(ctrl)}

	cli := commands.New(&mockApp{}, log)
	cli.SetArgs([]string{"status", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
}

func TestCommands_Status(t *testing.T) {
	var captured app.StatusOptions
	mock := &mockApp{
		statusFunc: func(_ context.Context, opts app.StatusOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"status", "-c", "other.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "other.yaml", captured.ConfigPath)
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected app.CleanOptions
	}{
		{
			name:     "default",
			args:     []string{"clean"},
			expected: app.CleanOptions{ConfigPath: "endotarter.yaml"},
		},
		{
			name:     "dump",
			args:     []string{"clean", "--dump"},
			expected: app.CleanOptions{ConfigPath: "endotarter.yaml", Dump: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock, nil)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.expected, captured)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "endotarter version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}
