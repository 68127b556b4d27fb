package main

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
	"github.com/spf13/cobra"
	"github.com/viant/fromstr"
	"go.uber.org/zap"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <name,age>...",
		Short: "Parse name,age records given as arguments",
		Long: `Parse each argument as a name,age record and print the result.

Examples:
  fromstr parse Mark,20
  fromstr parse --format json John,32 Ann,7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(a, cmd.OutOrStdout(), outputFormat, args)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}

func runParse(a *app, w io.Writer, outputFormat string, args []string) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	var persons personList
	for _, arg := range args {
		person, err := fromstr.ParsePerson(arg)
		if err != nil {
			a.logger.Warn("invalid record", zap.String("input", arg), zap.Stringer("kind", fromstr.KindOf(err)), zap.Error(err))
			return err
		}
		a.logger.Debug("parsed record", zap.String("name", person.Name), zap.Uint("age", person.Age))
		persons = append(persons, &person)
	}
	return writePersons(w, outputFormat, persons)
}

type personList []*fromstr.Person

// MarshalJSONArray encodes persons as JSON array
func (l personList) MarshalJSONArray(enc *gojay.Encoder) {
	for _, person := range l {
		enc.Object(person)
	}
}

// IsNil returns true if list is nil
func (l personList) IsNil() bool {
	return l == nil
}

func writePersons(w io.Writer, outputFormat string, persons personList) error {
	if outputFormat == "json" {
		if persons == nil {
			persons = personList{}
		}
		enc := gojay.NewEncoder(w)
		defer enc.Release()
		if err := enc.EncodeArray(persons); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	for _, person := range persons {
		if _, err := fmt.Fprintf(w, "name=%s age=%d\n", person.Name, person.Age); err != nil {
			return err
		}
	}
	return nil
}
