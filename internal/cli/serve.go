package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/chatstyle/pkg/server"
	"github.com/arthur-debert/chatstyle/pkg/styleset"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(g *globalOptions) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		Long:    MsgServeLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			metrics := styleset.NewMetrics(reg)

			mgr := styleset.NewManager(g.configOptions(), styleset.Options{Profile: g.serveProfile()}, metrics)
			set, err := mgr.Reload()
			if err != nil {
				return fmt.Errorf(MsgErrLoadStyles, err)
			}

			if watch {
				if err := mgr.Watch(ctx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), MsgWatching, set.Config.Source)
			}

			if addr == "" {
				addr = set.Config.Server.Addr
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgServing, len(set.Styles()), addr)
			return server.New(mgr, reg).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", MsgFlagAddr)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, MsgFlagWatch)

	return cmd
}
