package main

import (
	"github.com/spf13/cobra"

	"github.com/husk-sh/husk/internal/codec"
)

func (a *app) newDecodeCmd() *cobra.Command {
	var (
		formatName string
		file       string
		form       bool
	)

	cmd := &cobra.Command{
		Use:   "decode [data]",
		Short: "Strictly decode data from the chosen format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ParseFormat(formatName)
			if err != nil {
				return &usageError{err: err}
			}

			text, err := resolveInputText(args, file)
			if err != nil {
				return err
			}

			var decoded []byte
			if f == codec.FormatURL {
				decoded, err = codec.DecodeURL(text, form)
			} else {
				decoded, err = codec.Decode(text, f)
			}
			if err != nil {
				return err
			}

			a.out.Decoded(decoded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "base64", "Source encoding format")
	cmd.Flags().StringVarP(&file, "file", "i", "", "Read input from file")
	cmd.Flags().BoolVar(&form, "form", false, "Form-decoding for url (+ becomes space)")
	return cmd
}
