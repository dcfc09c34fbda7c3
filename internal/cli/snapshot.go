package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindloom/mindloom/pkg/settings"
	"github.com/mindloom/mindloom/pkg/snapshot"
)

// newSnapshotCmd creates the "snapshot" command for managing autosave
// snapshots.
func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage autosave snapshots",
	}

	cmd.AddCommand(newSnapshotListCmd())
	cmd.AddCommand(newSnapshotClearCmd())
	cmd.AddCommand(newSnapshotRestoreCmd())
	cmd.AddCommand(newSnapshotPathCmd())

	return cmd
}

// openSnapshotStore opens the store in the conventional location.
func openSnapshotStore() (*snapshot.FileStore, error) {
	dir, err := settings.SnapshotDir()
	if err != nil {
		return nil, fmt.Errorf("get snapshot dir: %w", err)
	}
	return snapshot.NewFileStore(dir)
}

func newSnapshotListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored autosave snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openSnapshotStore()
			if err != nil {
				return err
			}
			defer store.Close()

			infos, err := store.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printInfo("No snapshots stored")
				return nil
			}

			for _, info := range infos {
				printKeyValue(info.Key[:12], fmt.Sprintf("%d bytes, saved %s", info.Size, info.SavedAt.Format("2006-01-02 15:04:05")))
			}
			return nil
		},
	}
}

func newSnapshotClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all autosave snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openSnapshotStore()
			if err != nil {
				return err
			}
			defer store.Close()

			infos, err := store.List()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared %d snapshots", len(infos))
			return nil
		},
	}
}

func newSnapshotRestoreCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "restore <key-prefix>",
		Short: "Write an autosave snapshot back out as a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openSnapshotStore()
			if err != nil {
				return err
			}
			defer store.Close()

			infos, err := store.List()
			if err != nil {
				return err
			}

			var key string
			for _, info := range infos {
				if strings.HasPrefix(info.Key, args[0]) {
					if key != "" {
						return fmt.Errorf("prefix %q matches more than one snapshot", args[0])
					}
					key = info.Key
				}
			}
			if key == "" {
				return fmt.Errorf("no snapshot matches %q", args[0])
			}

			data, ok, err := store.Get(context.Background(), key)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("snapshot %q expired", key)
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			printSuccess("Restored snapshot %s", key[:12])
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "restored.heimer", "output document path")
	return cmd
}

func newSnapshotPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the snapshot directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := settings.SnapshotDir()
			if err != nil {
				return fmt.Errorf("get snapshot dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
