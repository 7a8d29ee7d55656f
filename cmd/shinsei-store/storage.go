package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/otomatty/shinsei/pkg/types"
)

type storeFactory func() (types.Store, error)

// addStorageCommands wires the datastore subcommands onto the root.
func addStorageCommands(rootCmd *cobra.Command, newStore storeFactory) {
	listCmd := &cobra.Command{
		Use:   "list <datastore>",
		Short: "List the keys of a datastore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return printError(cmd, err)
			}
			keys, err := store.List(args[0])
			if err != nil {
				return printError(cmd, err)
			}
			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("(empty)"))
				return nil
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), keyStyle.Render(key))
			}
			return nil
		},
	}

	allCmd := &cobra.Command{
		Use:   "all <datastore>",
		Short: "Print every value in a datastore",
		Long: `Print every value in a datastore, one per line, in filesystem
enumeration order. Keys are not printed; the order is independent of
the order "list" reports.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return printError(cmd, err)
			}
			values, err := store.All(args[0])
			if err != nil {
				return printError(cmd, err)
			}
			for _, value := range values {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", value)
			}
			return nil
		},
	}

	var getText bool
	getCmd := &cobra.Command{
		Use:   "get <datastore> <key>",
		Short: "Print the value stored under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return printError(cmd, err)
			}
			if getText {
				value, ok, err := store.GetString(args[0], args[1])
				if err != nil {
					return printError(cmd, err)
				}
				if !ok {
					fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("(absent)"))
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), value)
				return nil
			}
			value, ok, err := store.Get(args[0], args[1])
			if err != nil {
				return printError(cmd, err)
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("(absent)"))
				return nil
			}
			_, err = cmd.OutOrStdout().Write(value)
			return err
		},
	}
	getCmd.Flags().BoolVar(&getText, "text", false, "Decode the value as UTF-8 text")

	putCmd := &cobra.Command{
		Use:   "put <datastore> <key> [value]",
		Short: "Store a value under a key",
		Long: `Store a value under a key, replacing any existing entry. When value
is omitted, the value is read from standard input.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return printError(cmd, err)
			}

			var value []byte
			if len(args) == 3 {
				value = []byte(args[2])
			} else {
				value, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return printError(cmd, err)
				}
			}

			if err := store.Put(args[0], args[1], value); err != nil {
				return printError(cmd, err)
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <datastore> <key>",
		Short: "Delete the entry stored under a key",
		Long:  `Delete the entry stored under a key. Deleting a missing entry succeeds.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return printError(cmd, err)
			}
			if err := store.Delete(args[0], args[1]); err != nil {
				return printError(cmd, err)
			}
			return nil
		},
	}

	existsCmd := &cobra.Command{
		Use:   "exists <datastore> <key>",
		Short: "Report whether a key has a stored entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return printError(cmd, err)
			}
			ok, err := store.Exists(args[0], args[1])
			if err != nil {
				return printError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderBool(ok))
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, allCmd, getCmd, putCmd, deleteCmd, existsCmd)
}

// printError renders the error for the user and returns it so cobra
// reports a non-zero exit.
func printError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Error:"), err.Error())
	return err
}
