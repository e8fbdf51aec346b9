package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/phanxgames/willowxr"
)

func runCmd() *cobra.Command {
	var (
		maxFrames int
		demo      bool
		spawns    []string
		asJSON    bool
		noColor   bool
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "run <script.json>",
		Short: "Run a gesture script headlessly and print its snapshots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err := willowxr.LoadTestScript(data)
			if err != nil {
				return err
			}

			scene := willowxr.NewScene()
			scene.SetLogOutput(cmd.ErrOrStderr())
			ix := willowxr.NewInteraction(scene, willowxr.NewSimulatedHands(), cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if demo {
				willowxr.BuildDemo(ctx, ix, willowxr.PlaceholderLoader)
				if err := scene.AwaitAssets(ctx); err != nil {
					return err
				}
			}
			for _, s := range spawns {
				p, err := parseVec(s)
				if err != nil {
					return fmt.Errorf("--spawn %q: %w", s, err)
				}
				ix.Registry().Spawn(p, mgl64.QuatIdent())
			}

			ix.SetTestRunner(runner)
			frames := 0
			for !runner.Done() {
				if frames >= maxFrames {
					return fmt.Errorf("script still running after %d frames", maxFrames)
				}
				ix.Update()
				frames++
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runner.Snapshots())
			}
			writeReport(cmd.OutOrStdout(), newOutput(cmd.OutOrStdout(), noColor), args[0], frames, runner.Snapshots())
			return nil
		},
	}
	cmd.Flags().IntVar(&maxFrames, "max-frames", 10000, "abort if the script has not finished after this many frames")
	cmd.Flags().BoolVar(&demo, "demo", false, "populate the scene with the demo props before running")
	cmd.Flags().StringArrayVar(&spawns, "spawn", nil, "pre-spawn an object at x,y,z (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print snapshots as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "limit for loading demo assets")
	return cmd
}

func parseVec(s string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	n, err := fmt.Sscanf(s, "%g,%g,%g", &v[0], &v[1], &v[2])
	if err != nil {
		return v, err
	}
	if n != 3 {
		return v, fmt.Errorf("want x,y,z")
	}
	return v, nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script.json>...",
		Short: "Validate gesture scripts without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err == nil {
					_, err = willowxr.LoadTestScript(data)
				}
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scripts invalid", failed, len(args))
			}
			return nil
		},
	}
}
