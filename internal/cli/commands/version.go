package commands

import (
	"github.com/spf13/cobra"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
}

// known drops build metadata that was not stamped at link time.
func known(v string) string {
	if v == "unknown" {
		return ""
	}
	return v
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display chtlcheck version and build information.

Use --output json or --output yaml for machine-readable output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd, "").Renderer
			info := VersionInfo{
				Version:   info.Version,
				GitCommit: known(info.GitCommit),
				BuildDate: known(info.BuildDate),
			}

			if handled, err := r.Data(info); handled {
				return err
			}

			r.Printf("chtlcheck v%s\n", info.Version)
			r.Println("CHTL syntax validator built with Go")
			if info.GitCommit != "" {
				r.Printf("  commit: %s\n", info.GitCommit)
			}
			if info.BuildDate != "" {
				r.Printf("  built:  %s\n", info.BuildDate)
			}
			return nil
		},
	}
}
