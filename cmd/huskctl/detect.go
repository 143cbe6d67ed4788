package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/husk-sh/husk/internal/detect"
	"github.com/husk-sh/husk/internal/render"
)

func (a *app) newDetectCmd() *cobra.Command {
	var (
		file       string
		showScores bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "detect [data]",
		Short: "Identify the likely encoding of data with confidence scores",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := render.ParseMode(output)
			if err != nil {
				return &usageError{err: err}
			}

			text, err := resolveInputText(args, file)
			if err != nil {
				return err
			}

			results := detect.Detect(text)
			a.logger.Debug("detection complete",
				zap.Int("candidates", len(results)),
				zap.Int("input_len", len(text)))

			if mode != render.ModeText {
				data, err := render.Marshal(render.DetectionReports(results), mode)
				if err != nil {
					return err
				}
				a.out.Stdout.Write(data)
				return nil
			}

			a.out.Detection(results, detect.ScoreAll(text), showScores)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "i", "", "Read input from file")
	cmd.Flags().BoolVar(&showScores, "scores", false, "Show the full per-format score table")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output mode: text, json, or yaml")
	return cmd
}
