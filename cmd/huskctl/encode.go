package main

import (
	"github.com/spf13/cobra"

	"github.com/husk-sh/husk/internal/codec"
)

func (a *app) newEncodeCmd() *cobra.Command {
	var (
		formatName string
		file       string
		form       bool
	)

	cmd := &cobra.Command{
		Use:   "encode [data]",
		Short: "Encode data in the chosen format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ParseFormat(formatName)
			if err != nil {
				return &usageError{err: err}
			}

			raw, err := resolveInputBytes(args, file)
			if err != nil {
				return err
			}

			var result string
			if f == codec.FormatURL {
				result = codec.EncodeURL(raw, form)
			} else {
				result, err = codec.Encode(raw, f)
				if err != nil {
					return err
				}
			}

			a.out.Encoded(result, string(f))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "base64", "Target encoding format")
	cmd.Flags().StringVarP(&file, "file", "i", "", "Read input from file")
	cmd.Flags().BoolVar(&form, "form", false, "Form-encoding for url (space becomes +)")
	return cmd
}
