package cli

import (
	"github.com/spf13/cobra"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/config"
)

// NewRootCommand creates the scs-converter command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(UUIDv7Generator{})
}

func newRootCommand(ids RunIDGenerator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scs-converter <input dir> <output dir>",
		Short: "Convert SCs sources to triples",
		Long: `Convert every SCs source file under an input directory into one
triple file (data.scs) and extracted link payloads (data/) in the output
directory. The output directory is replaced.

Settings are read from the YAML file named by $` + config.EnvConfigPath + `, if set.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cmd.Usage()
			}
			return runConvert(cmd, ids, args[0], args[1])
		},
	}
	return cmd
}
