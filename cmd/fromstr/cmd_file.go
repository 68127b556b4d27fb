package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/fromstr/records"
	"go.uber.org/zap"
)

func newFileCmd(a *app) *cobra.Command {
	var outputFormat string
	var comment string
	var failFast bool
	var keepBlank bool

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Parse a file of newline separated name,age records",
		Long: `Parse each line of a file as a name,age record.

Invalid lines are reported on stderr and the command exits with an error.
Use - to read standard input.

Examples:
  fromstr file people.txt
  fromstr file --comment '#' --format json people.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			opts := []records.Option{records.WithSkipBlank(!keepBlank)}
			if comment != "" {
				opts = append(opts, records.WithComment(comment))
			}
			if failFast {
				opts = append(opts, records.WithFailFast())
			}
			return runFile(a, cmd.OutOrStdout(), cmd.ErrOrStderr(), outputFormat, data, opts)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&comment, "comment", "", "skip lines starting with this prefix")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first invalid line")
	cmd.Flags().BoolVar(&keepBlank, "keep-blank", false, "report blank lines as empty records")

	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	return data, nil
}

func runFile(a *app, w, errW io.Writer, outputFormat string, data []byte, opts []records.Option) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	parsed := records.Parse(data, opts...)
	persons, err := records.Persons(parsed)
	a.logger.Debug("parsed records file", zap.Int("records", len(parsed)), zap.Int("valid", len(persons)))
	if writeErr := writePersons(w, outputFormat, persons); writeErr != nil {
		return writeErr
	}
	if err != nil {
		for _, record := range parsed {
			if record.Err != nil {
				if _, writeErr := fmt.Fprintln(errW, record.Err); writeErr != nil {
					return writeErr
				}
			}
		}
		return fmt.Errorf("%d of %d records were invalid", len(parsed)-len(persons), len(parsed))
	}
	return nil
}
