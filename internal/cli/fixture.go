package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"cordcore/pkg/codec"
	"cordcore/pkg/discord"
	"cordcore/pkg/discord/audit"
)

var fixtureKindFlag string

// roundTrips maps an entity kind to its parse-then-serialize cycle.
var roundTrips = map[string]func(codec.Payload) codec.Payload{
	"user": func(data codec.Payload) codec.Payload {
		return discord.UserFromData(data).ToData(true, true)
	},
	"role": func(data codec.Payload) codec.Payload {
		return discord.RoleFromData(data, 0).ToData(true, true)
	},
	"emoji": func(data codec.Payload) codec.Payload {
		return discord.EmojiFromData(data, 0).ToData(true, true)
	},
	"guild": func(data codec.Payload) codec.Payload {
		return discord.GuildFromData(data).ToData(true, true)
	},
	"audit-entry": func(data codec.Payload) codec.Payload {
		return audit.EntryFromData(data, 0).ToData(true, true)
	},
}

func init() {
	fixtureCmd := &cobra.Command{
		Use:   "fixture",
		Short: "Work with entity fixture payloads",
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Round-trip fixture payloads and report differences",
		Long: "Read a JSON array of wire payloads (stdin or file), run each through the\n" +
			"entity parser and back through the serializer, and report per-payload key\n" +
			"differences. Differences flag either a broken fixture or an intentionally\n" +
			"lossy field; the command fails only on unreadable input.",
		Args: cobra.MaximumNArgs(1),
		RunE: runFixtureValidate,
	}
	validateCmd.Flags().StringVarP(&fixtureKindFlag, "kind", "k", "guild",
		"Payload kind: user, role, emoji, guild or audit-entry")

	fixtureCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(fixtureCmd)
}

type fixtureDiff struct {
	Index   int      `json:"index" yaml:"index"`
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Dropped []string `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	Added   []string `json:"added,omitempty" yaml:"added,omitempty"`
	Changed []string `json:"changed,omitempty" yaml:"changed,omitempty"`
}

type fixtureReport struct {
	Kind     string        `json:"kind" yaml:"kind"`
	Payloads int           `json:"payloads" yaml:"payloads"`
	Clean    int           `json:"clean" yaml:"clean"`
	Diffs    []fixtureDiff `json:"diffs,omitempty" yaml:"diffs,omitempty"`
}

func runFixtureValidate(cmd *cobra.Command, args []string) error {
	roundTrip, ok := roundTrips[fixtureKindFlag]
	if !ok {
		return fmt.Errorf("unknown fixture kind %q", fixtureKindFlag)
	}
	data, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}
	var payloads []codec.Payload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	report := fixtureReport{Kind: fixtureKindFlag, Payloads: len(payloads)}
	for i, payload := range payloads {
		diff := diffPayloads(payload, roundTrip(payload))
		diff.Index = i
		if id, ok := payload["id"].(string); ok {
			diff.ID = id
		}
		if len(diff.Dropped) == 0 && len(diff.Added) == 0 && len(diff.Changed) == 0 {
			report.Clean++
			continue
		}
		report.Diffs = append(report.Diffs, diff)
	}
	return render(cmd, report, func(w io.Writer) {
		fmt.Fprintf(w, "%d %s payloads, %d round-trip clean\n", report.Payloads, report.Kind, report.Clean)
		for _, diff := range report.Diffs {
			fmt.Fprintf(w, "payload %d (id %s): dropped %v, added %v, changed %v\n",
				diff.Index, diff.ID, diff.Dropped, diff.Added, diff.Changed)
		}
	})
}

// diffPayloads compares a fixture payload against its round-trip output at
// the key level. Values are compared through their JSON encodings so typed
// in-memory values and decoded fixture values meet on equal footing.
func diffPayloads(input, output codec.Payload) fixtureDiff {
	var diff fixtureDiff
	for key, in := range input {
		out, ok := output[key]
		if !ok {
			diff.Dropped = append(diff.Dropped, key)
			continue
		}
		if !jsonEqual(in, out) {
			diff.Changed = append(diff.Changed, key)
		}
	}
	for key := range output {
		if _, ok := input[key]; !ok {
			diff.Added = append(diff.Added, key)
		}
	}
	slices.Sort(diff.Dropped)
	slices.Sort(diff.Added)
	slices.Sort(diff.Changed)
	return diff
}

func jsonEqual(a, b any) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
