package main

import (
	"github.com/spf13/cobra"

	"github.com/husk-sh/husk/internal/chain"
)

func (a *app) newChainCmd() *cobra.Command {
	var (
		file       string
		steps      string
		recipeName string
		reverse    bool
	)

	cmd := &cobra.Command{
		Use:   "chain [data]",
		Short: "Apply a multi-step encoding pipeline (or reverse one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := a.resolvePipeline(steps, recipeName)
			if err != nil {
				return err
			}

			if reverse {
				text, err := resolveInputText(args, file)
				if err != nil {
					return err
				}
				decoded, err := pipeline.Decode(text)
				if err != nil {
					return err
				}
				a.out.Decoded(decoded)
				return nil
			}

			raw, err := resolveInputBytes(args, file)
			if err != nil {
				return err
			}
			encoded, err := pipeline.Encode(raw)
			if err != nil {
				return err
			}
			a.out.Encoded(encoded, pipeline.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "i", "", "Read input from file")
	cmd.Flags().StringVar(&steps, "steps", "", "Comma-separated pipeline steps, e.g. base64,hex")
	cmd.Flags().StringVar(&recipeName, "recipe", "", "Use a saved recipe instead of --steps")
	cmd.Flags().BoolVar(&reverse, "decode", false, "Run the pipeline in reverse (strict decodes)")
	return cmd
}

func (a *app) resolvePipeline(steps, recipeName string) (chain.Pipeline, error) {
	switch {
	case steps != "" && recipeName != "":
		return chain.Pipeline{}, usagef("--steps and --recipe are mutually exclusive")
	case steps != "":
		pipeline, err := chain.Parse(steps)
		if err != nil {
			return chain.Pipeline{}, &usageError{err: err}
		}
		return pipeline, nil
	case recipeName != "":
		store := chain.NewStore(a.cfg.RecipeDir)
		if err := store.Load(); err != nil {
			return chain.Pipeline{}, err
		}
		recipe, ok := store.Get(recipeName)
		if !ok {
			return chain.Pipeline{}, usagef("recipe %q not found", recipeName)
		}
		return recipe.Pipeline, nil
	}
	return chain.Pipeline{}, usagef("either --steps or --recipe is required")
}
