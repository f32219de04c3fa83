package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cordcore/internal/archive"
	"cordcore/pkg/codec"
	"cordcore/pkg/discord"
	"cordcore/pkg/discord/audit"
)

func init() {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Work with archived audit batches",
	}

	putCmd := &cobra.Command{
		Use:   "put <guild-id> [file]",
		Short: "Archive a batch of audit log entries",
		Long: "Read a JSON array of audit log entry payloads (stdin or file), parse them,\n" +
			"and store the batch for the given guild in the configured archive store.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runArchivePut,
	}

	listCmd := &cobra.Command{
		Use:   "list <guild-id>",
		Short: "List archived batches for a guild",
		Args:  cobra.ExactArgs(1),
		RunE:  runArchiveList,
	}

	archiveCmd.AddCommand(putCmd, listCmd)
	RootCmd.AddCommand(archiveCmd)
}

type putReport struct {
	Key     string `json:"key" yaml:"key"`
	Entries int    `json:"entries" yaml:"entries"`
	Size    int64  `json:"size_bytes" yaml:"size_bytes"`
}

func runArchivePut(cmd *cobra.Command, args []string) error {
	guildID, err := discord.ParseSnowflake(args[0])
	if err != nil {
		return fmt.Errorf("parse guild id: %w", err)
	}
	data, err := readInput(cmd, args[1:])
	if err != nil {
		return fmt.Errorf("read batch: %w", err)
	}
	var payloads []codec.Payload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return fmt.Errorf("parse batch: %w", err)
	}
	entries := make([]*audit.Entry, 0, len(payloads))
	for _, payload := range payloads {
		entries = append(entries, audit.EntryFromData(payload, guildID))
	}

	ctx := cmd.Context()
	store, err := archive.Open(ctx)
	if err != nil {
		return fmt.Errorf("open archive store: %w", err)
	}
	info, err := archive.NewSink(store).Put(ctx, guildID, entries)
	if err != nil {
		return fmt.Errorf("archive batch: %w", err)
	}
	report := putReport{Key: info.Key, Entries: len(entries), Size: info.Size}
	return render(cmd, report, func(w io.Writer) {
		fmt.Fprintf(w, "archived %d entries as %s (%d bytes)\n", report.Entries, report.Key, report.Size)
	})
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	guildID, err := discord.ParseSnowflake(args[0])
	if err != nil {
		return fmt.Errorf("parse guild id: %w", err)
	}
	ctx := cmd.Context()
	store, err := archive.Open(ctx)
	if err != nil {
		return fmt.Errorf("open archive store: %w", err)
	}
	batches, err := archive.NewSink(store).List(ctx, guildID)
	if err != nil {
		return fmt.Errorf("list batches: %w", err)
	}
	return render(cmd, batches, func(w io.Writer) {
		for _, batch := range batches {
			fmt.Fprintf(w, "%s\t%d bytes\t%s\n", batch.Key, batch.Size, batch.LastModified.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintf(w, "%d batches\n", len(batches))
	})
}
