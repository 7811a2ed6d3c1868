package commands

import (
	"fmt"

	"github.com/leapstack-labs/esmgen/internal/cli/output"
	"github.com/leapstack-labs/esmgen/pkg/dialect"
	"github.com/spf13/cobra"
)

// BuildInfo is the version report, also used as its JSON output.
type BuildInfo struct {
	Version   string   `json:"version"`
	Commit    string   `json:"commit"`
	BuildDate string   `json:"build_date"`
	Dialect   string   `json:"dialect,omitempty"`
	Dialects  []string `json:"dialects"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display the esmgen version, the commit and date it was built from,
and the AST dialects compiled into the binary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd, info)
		},
	}
}

func runVersion(cmd *cobra.Command, info BuildInfo) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	info.Dialects = dialect.List()
	if d, err := dialect.Resolve(cmdCtx.Cfg.Dialect); err == nil {
		info.Dialect = d.Name
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}

	r.Header(1, "esmgen v"+info.Version)
	r.Println(output.FormatKeyValue("commit", info.Commit))
	r.Println(output.FormatKeyValue("built", info.BuildDate))
	if info.Dialect != "" {
		r.Println(output.FormatKeyValue("dialect", fmt.Sprintf("%s (%d available)", info.Dialect, len(info.Dialects))))
	}
	r.Muted("ES module import/export renderer")
	return nil
}
