package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current menus, cards and friend links as a seed file",
		Long: "Export reads the navigation content from the database and writes it\n" +
			"in the seed file layout. The result can be used as seed.file to\n" +
			"populate another database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolveEnvironment(cmd)
			if err != nil {
				return err
			}
			store, err := openExisting(env.dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			set, err := store.Export(cmd.Context())
			if err != nil {
				return sysErr(err)
			}

			if output == "" {
				data, err := set.Marshal()
				if err != nil {
					return sysErr(err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := set.WriteFile(output); err != nil {
				return sysErr(fmt.Errorf("write %s: %w", output, err))
			}
			env.log.Info().Str("file", output).Int("cards", len(set.Cards)).Msg("exported")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default: stdout)")
	return cmd
}
