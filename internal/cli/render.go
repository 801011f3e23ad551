package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/identifier"
	"github.com/arthur-debert/chatstyle/pkg/predicate"
	"github.com/arthur-debert/chatstyle/pkg/render"
	"github.com/arthur-debert/chatstyle/pkg/server"
	"github.com/arthur-debert/chatstyle/pkg/style"
	"github.com/arthur-debert/chatstyle/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// subjectFlags describe the subject a style is selected for
type subjectFlags struct {
	permissions []string
	opLevel     int
}

func (f *subjectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.permissions, "permission", "p", nil, MsgFlagPermission)
	cmd.Flags().IntVar(&f.opLevel, "op-level", 0, MsgFlagOpLevel)
}

func (f *subjectFlags) subject() predicate.StaticSubject {
	return predicate.StaticSubject{Level: f.opLevel, Permissions: f.permissions}
}

func newRenderCmd(g *globalOptions) *cobra.Command {
	var (
		subject   subjectFlags
		vars      []string
		id        string
		styleName string
	)

	cmd := &cobra.Command{
		Use:               "render <slot>",
		Short:             MsgRenderShort,
		Long:              MsgRenderLong,
		Example:           MsgRenderExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: slotCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := parseVars(vars)
			if err != nil {
				return err
			}

			set, err := g.loadSet(cmd)
			if err != nil {
				return err
			}

			st := set.For(subject.subject())
			if styleName != "" {
				var ok bool
				if st, ok = set.Style(styleName); !ok {
					return errors.Newf(errors.ErrNotFound, MsgErrUnknownSty, styleName).WithDetail("style", styleName)
				}
			}
			log.Debug().Str("style", st.Name()).Str("slot", args[0]).Msg("Rendering")

			res, err := renderSlot(st, args[0], id, ctx)
			if err != nil {
				return err
			}
			printResult(cmd, st.Name(), res)
			return nil
		},
	}

	subject.register(cmd)
	cmd.Flags().StringArrayVar(&vars, "var", nil, MsgFlagVar)
	cmd.Flags().StringVar(&id, "id", "", MsgFlagID)
	cmd.Flags().StringVar(&styleName, "style", "", MsgFlagStyle)

	return cmd
}

// renderSlot renders a named slot, or the custom message id when slot is
// "custom"
func renderSlot(st *style.Style, slot, id string, ctx render.Context) (render.Result, error) {
	if slot == server.SlotCustom {
		if id == "" {
			return render.Result{}, errors.New(errors.ErrInvalidInput, MsgErrNeedID)
		}
		parsed, err := identifier.Parse(id)
		if err != nil {
			return render.Result{}, err
		}
		var receiver *string
		if v, ok := ctx[style.VarReceiver]; ok {
			receiver = &v
		}
		return st.Custom(parsed, receiver, ctx[style.VarDisplayName], ctx[style.VarMessage]), nil
	}

	s, err := style.ParseSlot(slot)
	if err != nil {
		return render.Result{}, err
	}
	if s == style.SlotDisplayName {
		base := style.DisplayNameContext(ctx[style.VarVanillaDisplayName], ctx[style.VarName])
		for k, v := range ctx {
			base[k] = v
		}
		ctx = base
	}
	return st.Render(s, ctx), nil
}

// printResult writes rendered text to stdout; suppressed and absent results
// only produce a note on stderr
func printResult(cmd *cobra.Command, styleName string, res render.Result) {
	switch res.Kind {
	case render.Text:
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	case render.Suppress:
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Render("Suppressed", MsgSuppressed))
	default:
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Render("Absent", MsgAbsent))
	}
	fmt.Fprint(cmd.ErrOrStderr(), styles.Render("Muted", fmt.Sprintf(MsgRenderedBy, styleName)))
}

// parseVars turns name=value pairs into a render context
func parseVars(pairs []string) (render.Context, error) {
	ctx := make(render.Context, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrBadVar, pair).WithDetail("var", pair)
		}
		ctx[name] = value
	}
	return ctx, nil
}

func slotCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := []string{server.SlotCustom}
	for _, s := range style.Slots() {
		names = append(names, s.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
