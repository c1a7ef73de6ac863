package cmd

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"KlineScope/internal/chart"
	"KlineScope/internal/collector"
)

var (
	klinePath  string
	trendsPath string
	pretty     bool
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute chart payloads from saved upstream responses and print them as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if klinePath == "" && trendsPath == "" {
			return errors.New("one of --kline or --trends is required")
		}

		out := struct {
			KLine       *chart.KLine       `json:"kline,omitempty"`
			TimeSharing *chart.TimeSharing `json:"timeSharing,omitempty"`
		}{}

		if klinePath != "" {
			kd, err := collector.ReadKLineFile(klinePath)
			if err != nil {
				return err
			}
			if out.KLine, err = collector.BuildKLine(kd, cfg.ChartOptions()); err != nil {
				return err
			}
		}
		if trendsPath != "" {
			td, err := collector.ReadTrendsFile(trendsPath)
			if err != nil {
				return err
			}
			if out.TimeSharing, err = collector.BuildTimeSharing(td); err != nil {
				return err
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		if pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(out)
	},
}

func init() {
	computeCmd.Flags().StringVar(&klinePath, "kline", "", "saved daily K-line response")
	computeCmd.Flags().StringVar(&trendsPath, "trends", "", "saved intraday trends response")
	computeCmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output")
}
