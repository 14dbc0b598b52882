// Package cli builds the command each notewriter binary runs.
//
// Binaries take no flags or arguments: which input and storage are used is
// fixed by the Pairing the binary is built with.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"notewriter/internal/application/commands"
	"notewriter/internal/ports"
)

// Pairing builds the input and storage a binary is fixed to. Storage
// confirmations go to out.
type Pairing func(out io.Writer, logger *slog.Logger) (ports.NoteInput, ports.NoteStorage, error)

// NewRootCmd creates a command that writes a single note with the pairing
func NewRootCmd(use, short string, pair Pairing) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			logger := NewLogger(cmd.ErrOrStderr(), slog.LevelWarn)
			defer func() {
				if err != nil {
					logger.Error("write failed", "err", err)
				}
			}()

			input, storage, err := pair(cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}
			if closer, ok := storage.(io.Closer); ok {
				defer func() {
					if cerr := closer.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("failed to close storage: %w", cerr)
					}
				}()
			}

			result, err := commands.NewWriteNoteCommand(input, storage).Execute(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debug("note written", "timestamp", result.Note.FormattedTimestamp())
			return nil
		},
	}
}

// NewLogger returns a text logger writing to w at the given level
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the command and exits non-zero on failure
func Execute(cmd *cobra.Command) {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
