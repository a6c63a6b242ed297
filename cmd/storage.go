package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"scini/internal/config"
	"scini/internal/storage"
	"scini/internal/tui/shell"

	"github.com/spf13/cobra"
)

type storageOptions struct {
	file       string
	jsonOutput bool
}

func newStorageCmd() *cobra.Command {
	opts := &storageOptions{}
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect and edit the values the shell persists",
		Long: `The shell persists small values between runs, most notably the
camera map under the "cameraMap" key. These commands read and write them.`,
	}
	cmd.PersistentFlags().StringVar(&opts.file, "file", "", "storage file (default is the configured storage path)")

	cmd.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: "Print a persisted value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := opts.open()
			if err != nil {
				return err
			}
			value, ok, err := local.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("key %q not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Persist a value",
		Long: `Persist a value. The cameraMap key must hold a JSON object of camera
configurations, e.g. '{"main":{"ip":"10.0.0.20"}}'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if key == shell.CameraMapKey {
				if _, err := shell.ParseCameraMap(value); err != nil {
					return err
				}
			}
			local, err := opts.open()
			if err != nil {
				return err
			}
			if err := local.Set(key, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", key)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm KEY",
		Aliases: []string{"remove"},
		Short:   "Remove a persisted value",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := opts.open()
			if err != nil {
				return err
			}
			if err := local.Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	})

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List persisted keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := opts.open()
			if err != nil {
				return err
			}
			return listStorage(cmd, local, opts.jsonOutput)
		},
	}
	ls.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.AddCommand(ls)

	return cmd
}

func (o *storageOptions) open() (*storage.Local, error) {
	path := o.file
	if path == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load scini configuration: %w", err)
		}
		if path, err = cfg.StoragePath(); err != nil {
			return nil, err
		}
	}
	return storage.Open(path)
}

func listStorage(cmd *cobra.Command, local *storage.Local, asJSON bool) error {
	keys := local.Keys()
	out := cmd.OutOrStdout()

	if asJSON {
		values := make(map[string]string, len(keys))
		for _, k := range keys {
			v, _, _ := local.Get(k)
			values[k] = v
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	}

	if len(keys) == 0 {
		fmt.Fprintf(out, "Nothing stored in %s\n", local.Path())
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tBYTES")
	for _, k := range keys {
		v, _, _ := local.Get(k)
		fmt.Fprintf(w, "%s\t%d\n", k, len(v))
	}
	return w.Flush()
}
