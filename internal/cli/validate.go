package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/style"
	"github.com/arthur-debert/chatstyle/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newValidateCmd(g *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := g.loadSet(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, st := range set.Styles() {
				printStyleReport(out, st)
			}

			if set.Clean() {
				fmt.Fprintln(out, styles.Render("Success", MsgAllClean))
				return nil
			}
			fmt.Fprintln(out, styles.Render("Warning", MsgNotClean))
			if strict {
				return errors.New(errors.ErrConfigValid, MsgErrNotClean)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	return cmd
}

func printStyleReport(w io.Writer, st *style.Style) {
	rep := st.Report()

	fmt.Fprintln(w, styles.Render("StyleName", st.Name())+" "+styles.Render("Muted", rep.Summary()))
	fmt.Fprintf(w, MsgRequire, st.Require())

	for _, e := range rep.Emoticons {
		line := fmt.Sprintf(MsgReportEmoticons, styles.Render("Key", e.Key), e.Mode, e.Entries)
		if e.Filtered > 0 {
			line += fmt.Sprintf(MsgReportFiltered, e.Filtered)
		}
		fmt.Fprintln(w, line)
		if e.Err != nil {
			fmt.Fprintln(w, "    "+styles.Render("Error", e.Err.Error()))
		}
		for _, s := range e.Skips {
			fmt.Fprintln(w, "    "+styles.Render("Warning", s.Entry+": "+s.Err.Error()))
		}
	}
	for _, issue := range rep.Custom {
		fmt.Fprintln(w, "  "+styles.Render("Warning", "custom "+issue.Key+": "+issue.Err.Error()))
	}
	for _, warn := range rep.Warnings {
		fmt.Fprintln(w, "  "+styles.Render("Warning", warn.String()))
	}
	if rep.Clean() {
		fmt.Fprintln(w, styles.Render("Success", MsgStyleClean))
	}
}
