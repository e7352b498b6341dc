package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   Config
		want    Config
		wantErr string
	}{
		{
			name:  "defaults are applied to empty log settings",
			input: Config{InstallDir: "/repo/.github/bin"},
			want: Config{
				InstallDir: "/repo/.github/bin",
				LogFormat:  "text",
				LogLevel:   "info",
			},
		},
		{
			name: "explicit log settings are preserved",
			input: Config{
				InstallDir: "/repo/.github/bin",
				LogFormat:  "json",
				LogLevel:   "debug",
			},
			want: Config{
				InstallDir: "/repo/.github/bin",
				LogFormat:  "json",
				LogLevel:   "debug",
			},
		},
		{
			name:    "missing install dir is rejected",
			input:   Config{},
			wantErr: "InstallDir is a required configuration field",
		},
		{
			name: "unknown log format is rejected",
			input: Config{
				InstallDir: "/repo/.github/bin",
				LogFormat:  "xml",
			},
			wantErr: `invalid log format "xml"`,
		},
		{
			name: "unknown log level is rejected",
			input: Config{
				InstallDir: "/repo/.github/bin",
				LogLevel:   "verbose",
			},
			wantErr: `invalid log level "verbose"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			config, err := NewConfig(tc.input)

			if tc.wantErr != "" {
				require.Error(t, err)
				require.ErrorContains(t, err, tc.wantErr)
				require.Nil(t, config)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, *config)
		})
	}
}
