package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"go-wavecleanup/analysis"
	"go-wavecleanup/forms"
	"go-wavecleanup/hotspots"
	"go-wavecleanup/mockdata"
	"go-wavecleanup/types"
)

// dryRunDelay stands in for the network round trip of a real sign-up.
const dryRunDelay = time.Second

func (a *app) joinCmd() *cobra.Command {
	var (
		req    types.SignupRequest
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Sign up for the cleanup mission",
		Long: `Sends a mission sign-up to API_BASE_URL/api/users.

Example:
  wavecleanup join --name "Ada Lovelace" --email ada@example.org --message "I can skipper a boat"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var submitter forms.Submitter[types.SignupRequest] = forms.NewHTTPSubmitter(a.cfg.APIBaseURL)
			if dryRun {
				submitter = forms.SimulatedSubmitter[types.SignupRequest]{Delay: dryRunDelay}
			}

			f := forms.New(submitter, forms.MissionMessages, 0)
			defer f.Close()
			f.Set(req)

			notice, err := f.Submit(cmd.Context())
			printNotice(cmd, notice)
			return err
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Message, "message", "", "how you would like to help")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate the submission without contacting the server")
	return cmd
}

func (a *app) analyzeCmd() *cobra.Command {
	var location string
	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Classify the waste in an image with the configured analyzer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}
			analyzer, err := newAnalyzer(a.cfg)
			if err != nil {
				return err
			}

			session := analysis.NewSession(analyzer)
			if err := session.Select(analysis.NewFile(filepath.Base(args[0]), data, "")); err != nil {
				printNotice(cmd, analysis.RejectionNotice(err))
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "Analyzing...")
			result, err := session.Analyze(cmd.Context())
			if err != nil {
				printNotice(cmd, analysis.RejectionNotice(err))
				return err
			}
			result = newLocator(a.cfg, a.logger).Annotate(cmd.Context(), result, location)

			printNotice(cmd, analysis.CompletionNotice(result))
			printResult(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "where the photo was taken")
	return cmd
}

func (a *app) hotspotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hotspots [id]",
		Short: "List the monitored waste hotspots, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := hotspots.NewMap(mockdata.Hotspots())
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tSEVERITY\tMAP POSITION")
				for _, mk := range m.Markers() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%, %.1f%%\n", mk.ID, mk.Name, mk.Severity, mk.LeftPercent, mk.TopPercent)
				}
				return w.Flush()
			}

			if err := m.Select(args[0]); err != nil {
				if errors.Is(err, hotspots.ErrUnknownHotspot) {
					return fmt.Errorf("no hotspot with id %q", args[0])
				}
				return err
			}
			p := m.Panel()
			fmt.Fprintf(out, "%s [%s]\n", p.Name, p.RiskLabel)
			fmt.Fprintf(out, "  Waste Detected:   %s\n", p.WasteDetected)
			fmt.Fprintf(out, "  Cleanup Missions: %d active\n", p.CleanupMissions)
			fmt.Fprintf(out, "  Local Partners:   %s\n", strings.Join(p.LocalPartners, ", "))
			fmt.Fprintf(out, "  Last Detection:   %s\n", p.LastDetection)
			return nil
		},
	}
}

func printNotice(cmd *cobra.Command, n forms.Notice) {
	out := cmd.OutOrStdout()
	if n.Destructive() {
		out = cmd.ErrOrStderr()
	}
	fmt.Fprintf(out, "%s\n%s\n", n.Title, n.Description)
}

func printResult(cmd *cobra.Command, r types.AnalysisResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Waste Type:  %s\n", r.WasteType)
	fmt.Fprintf(out, "Confidence:  %d%%\n", r.ConfidencePercent())
	fmt.Fprintf(out, "Severity:    %s\n", r.Severity)
	if r.Location != "" {
		fmt.Fprintf(out, "Location:    %s\n", r.Location)
	}
	if r.Coordinates != nil {
		fmt.Fprintf(out, "Coordinates: %.4f, %.4f\n", r.Coordinates.Lat, r.Coordinates.Lng)
	}
	if r.NearestHotspot != nil {
		fmt.Fprintf(out, "Nearest:     %s (%.0f km)\n", r.NearestHotspot.Name, r.NearestHotspot.DistanceKM)
	}
}
