package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"agent-router/internal/load"
	"agent-router/internal/registry"
	"agent-router/internal/router"
	"agent-router/internal/router/usecase"
	"agent-router/internal/semantic"
	"agent-router/internal/stats"
	"agent-router/pkg/log"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var profilesPath string
	var jsonOut bool

	rootCmd := &cobra.Command{
		Use:   "routerctl",
		Short: "Route task descriptions to agents offline",
		Long: `routerctl runs the agent router in-process against the built-in agent
	catalogue or a YAML/TOML profile file, without starting the API server.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&profilesPath, "profiles", "", "path to agent profiles (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print JSON instead of a table")

	rootCmd.AddCommand(routeCmd(&profilesPath, &jsonOut))
	rootCmd.AddCommand(featuresCmd(&jsonOut))
	rootCmd.AddCommand(agentsCmd(&profilesPath, &jsonOut))
	return rootCmd
}

func routeCmd(profilesPath *string, jsonOut *bool) *cobra.Command {
	var strategyFlag string
	var required []string
	var priority int

	cmd := &cobra.Command{
		Use:   "route [text]",
		Short: "Pick an agent for a task description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := router.ParseStrategy(strategyFlag)
			if err != nil {
				return fmt.Errorf("--strategy %q: %w (valid: %s)", strategyFlag, err, strategyList())
			}

			reg, err := loadRegistry(*profilesPath)
			if err != nil {
				return err
			}

			tracker := stats.New(log.NewNop(), stats.Options{})
			uc := usecase.New(log.NewNop(), reg, semantic.New(), load.NewStatic(), tracker, usecase.Config{})
			defer uc.Close()

			res, err := uc.Route(context.Background(), router.RouteRequest{
				Content:              strings.Join(args, " "),
				Priority:             priority,
				RequiredCapabilities: required,
			}, strategy)
			if err != nil {
				return err
			}

			if *jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&strategyFlag, "strategy", "", "routing strategy ("+strategyList()+")")
	cmd.Flags().StringSliceVar(&required, "require", nil, "required capability tags")
	cmd.Flags().IntVar(&priority, "priority", router.DefaultPriority, "request priority, lower is more urgent")
	return cmd
}

func featuresCmd(jsonOut *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "features [text]",
		Short: "Show the semantic features extracted from text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := semantic.New().Extract(strings.Join(args, " "))
			if *jsonOut {
				return writeJSON(cmd.OutOrStdout(), f)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "INTENT\t%s\n", f.Intent)
			fmt.Fprintf(w, "DOMAIN\t%s\n", f.Domain)
			fmt.Fprintf(w, "COMPLEXITY\t%s\n", f.Complexity)
			fmt.Fprintf(w, "KEYWORDS\t%s\n", strings.Join(f.Keywords, ", "))
			fmt.Fprintf(w, "CONFIDENCE\t%.2f\n", f.Confidence)
			return w.Flush()
		},
	}
}

func agentsCmd(profilesPath *string, jsonOut *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List the agent catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(*profilesPath)
			if err != nil {
				return err
			}
			profiles := reg.Profiles()
			if *jsonOut {
				return writeJSON(cmd.OutOrStdout(), profiles)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "AGENT\tSERVICE\tINTENTS\tDOMAINS\tLOAD\tPERFORMANCE")
			for _, p := range profiles {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\n",
					p.AgentName, p.ServiceName, joinIntents(p.SupportedIntents), joinDomains(p.SupportedDomains),
					p.DeclaredLoad, p.PerformanceScore)
			}
			return w.Flush()
		},
	}
}

func loadRegistry(path string) (*registry.Registry, error) {
	profiles := registry.DefaultProfiles()
	if path != "" {
		loaded, err := registry.LoadProfiles(path)
		if err != nil {
			return nil, err
		}
		profiles = loaded
	}

	reg := registry.New()
	for _, p := range profiles {
		if _, err := reg.RegisterAgent(p.AgentName, p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func printResult(out io.Writer, res router.RouteResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "AGENT\t%s\n", res.TargetAgent)
	fmt.Fprintf(w, "SERVICE\t%s\n", res.TargetService)
	fmt.Fprintf(w, "CONFIDENCE\t%.2f\n", res.Confidence)
	fmt.Fprintf(w, "STRATEGY\t%s\n", res.Strategy)
	fmt.Fprintf(w, "REASONING\t%s\n", res.Reasoning)
	fmt.Fprintf(w, "ESTIMATED\t%s\n", res.EstimatedTime.Round(100*time.Millisecond))
	for _, a := range res.AlternativeRoutes {
		fmt.Fprintf(w, "ALTERNATIVE\t%s (%.2f)\n", a.AgentName, a.LoadAdjustedScore)
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func strategyList() string {
	names := make([]string, 0, len(router.Strategies()))
	for _, s := range router.Strategies() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func joinIntents(xs []semantic.Intent) string {
	s := make([]string, len(xs))
	for i, x := range xs {
		s[i] = string(x)
	}
	return strings.Join(s, ",")
}

func joinDomains(xs []semantic.Domain) string {
	s := make([]string, len(xs))
	for i, x := range xs {
		s[i] = string(x)
	}
	return strings.Join(s, ",")
}
