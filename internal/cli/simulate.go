package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler/internal/render"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		file      string
		algorithm string
		quantum   int
		all       bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scheduling simulation over a jobs file",
		Long: `Run a scheduling simulation over a jobs file and print the Gantt timeline and metrics.

The file is YAML or JSON ({"time_quantum": 2, "jobs": [...]}) or CSV with
rows of name,arrival_time,burst_time[,priority].`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "table" && output != "json" {
				return fmt.Errorf("unknown output %q: want table or json", output)
			}

			request, err := requests.LoadScheduleRequests(file)
			if err != nil {
				return err
			}
			if err := request.Validate(); err != nil {
				return err
			}
			if quantum == 0 {
				quantum = request.TimeQuantum
			}
			processes := request.Processes()
			engine := opts.newEngine(nil)

			selected := schedulers.Algorithms
			if !all {
				a, err := schedulers.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				selected = []schedulers.Algorithm{a}
			}

			reports := make([]responses.ScheduleResponse, 0, len(selected))
			if all {
				outcomes, err := engine.RunAll(processes, quantum)
				if err != nil {
					return err
				}
				for _, a := range selected {
					reports = append(reports, schedulers.GenerateResponse(a, outcomes[a]))
				}
			} else {
				outcome, err := engine.Run(selected[0], processes, quantum)
				if err != nil {
					return err
				}
				reports = append(reports, schedulers.GenerateResponse(selected[0], outcome))
			}
			opts.logger.Info().Str("file", file).Int("processes", len(processes)).Int("algorithms", len(reports)).Msg("simulation complete")

			out := cmd.OutOrStdout()
			if output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if all {
					byName := make(map[string]responses.ScheduleResponse, len(reports))
					for _, r := range reports {
						byName[r.Algorithm] = r
					}
					return enc.Encode(byName)
				}
				return enc.Encode(reports[0])
			}

			for i, r := range reports {
				render.Report(out, selected[i].Title(), r)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Jobs file (.yaml, .yml, .json or .csv)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(schedulers.FirstComeFirstServe), "Scheduling algorithm")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (defaults to the file, then config)")
	cmd.Flags().BoolVar(&all, "all", false, "Run every algorithm and compare")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
