package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/husk-sh/husk/internal/peel"
	"github.com/husk-sh/husk/internal/render"
)

func (a *app) newPeelCmd() *cobra.Command {
	var (
		file     string
		maxDepth int
		verbose  bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "peel [data]",
		Short: "Strip stacked encoding layers until the original payload is reached",
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

			depth := maxDepth
			if !cmd.Flags().Changed("max-depth") {
				depth = a.cfg.MaxDepth
			}

			result, err := peel.Peel(text, peel.Options{
				MaxDepth:      depth,
				Verbose:       verbose,
				PreviewLength: a.cfg.PreviewLength,
			})
			if err != nil {
				if errors.Is(err, peel.ErrInvalidDepth) {
					return &usageError{err: err}
				}
				return err
			}

			for _, layer := range result.Layers {
				a.logger.Debug("peeled layer",
					zap.Int("depth", layer.Depth),
					zap.String("format", string(layer.Format)),
					zap.Float64("confidence", layer.Confidence))
			}

			if mode != render.ModeText {
				data, err := render.Marshal(render.PeelReportOf(result), mode)
				if err != nil {
					return err
				}
				a.out.Stdout.Write(data)
				return nil
			}

			a.out.Peel(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "i", "", "Read input from file")
	cmd.Flags().IntVar(&maxDepth, "max-depth", peel.DefaultMaxDepth, "Maximum number of layers to strip")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Record the full score table per layer")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output mode: text, json, or yaml")
	return cmd
}
