package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/arthur-debert/chatstyle/pkg/render"
	"github.com/arthur-debert/chatstyle/pkg/ui/styles"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newEmoticonsCmd(g *globalOptions) *cobra.Command {
	var (
		subject subjectFlags
		filter  string
	)

	cmd := &cobra.Command{
		Use:     "emoticons",
		Short:   MsgEmoticonsShort,
		Long:    MsgEmoticonsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := g.loadSet(cmd)
			if err != nil {
				return err
			}

			sub := subject.subject()
			rows := emoticonRows(set.EmoticonsFor(sub), filter)
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, styles.Render("MutedItalic", MsgNoEmoticons))
				return nil
			}

			fmt.Fprintf(out, MsgEmoticonCount, humanize.Comma(int64(len(rows))), styles.Render("StyleName", set.For(sub).Name()))
			data := pterm.TableData{{"Trigger", "Renders"}}
			data = append(data, rows...)
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}

	subject.register(cmd)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", MsgFlagFilter)

	return cmd
}

// emoticonRows renders every trigger containing filter, sorted by trigger
func emoticonRows(table map[string]node.Node, filter string) [][]string {
	filter = strings.ToLower(filter)
	triggers := make([]string, 0, len(table))
	for trigger := range table {
		if filter == "" || strings.Contains(strings.ToLower(trigger), filter) {
			triggers = append(triggers, trigger)
		}
	}
	sort.Strings(triggers)

	rows := make([][]string, 0, len(triggers))
	for _, trigger := range triggers {
		rows = append(rows, []string{styles.Render("Trigger", trigger), render.Render(table[trigger], nil)})
	}
	return rows
}
