package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/husk-sh/husk/internal/chain"
)

func (a *app) newRecipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage saved encoding recipes",
	}
	cmd.AddCommand(
		a.newRecipeListCmd(),
		a.newRecipeSaveCmd(),
		a.newRecipeShowCmd(),
		a.newRecipeDeleteCmd(),
	)
	return cmd
}

func (a *app) openStore() (*chain.Store, error) {
	store := chain.NewStore(a.cfg.RecipeDir)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (a *app) newRecipeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			for _, recipe := range store.List() {
				fmt.Fprintf(a.out.Stdout, "%s\t%s\n", recipe.Name, recipe.Pipeline)
			}
			return nil
		},
	}
}

func (a *app) newRecipeSaveCmd() *cobra.Command {
	var (
		steps       string
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a pipeline as a named recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := chain.Parse(steps)
			if err != nil {
				return &usageError{err: err}
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			return store.Save(&chain.Recipe{
				Name:        args[0],
				Description: description,
				Tags:        tags,
				Pipeline:    pipeline,
			})
		},
	}

	cmd.Flags().StringVar(&steps, "steps", "", "Comma-separated pipeline steps, e.g. base64,hex")
	cmd.Flags().StringVar(&description, "description", "", "Recipe description")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Recipe tag (repeatable)")
	cmd.MarkFlagRequired("steps")
	return cmd
}

func (a *app) newRecipeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			recipe, ok := store.Get(args[0])
			if !ok {
				return usagef("recipe %q not found", args[0])
			}
			fmt.Fprintf(a.out.Stdout, "name:        %s\n", recipe.Name)
			fmt.Fprintf(a.out.Stdout, "steps:       %s\n", recipe.Pipeline)
			if recipe.Description != "" {
				fmt.Fprintf(a.out.Stdout, "description: %s\n", recipe.Description)
			}
			if len(recipe.Tags) > 0 {
				fmt.Fprintf(a.out.Stdout, "tags:        %v\n", recipe.Tags)
			}
			fmt.Fprintf(a.out.Stdout, "updated:     %s\n", recipe.UpdatedAt)
			return nil
		},
	}
}

func (a *app) newRecipeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if _, ok := store.Get(args[0]); !ok {
				return usagef("recipe %q not found", args[0])
			}
			return store.Delete(args[0])
		},
	}
}
