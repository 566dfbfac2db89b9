package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <plan>",
	Short: "Export a reading plan to a plain text file",
	Long:  `Export a reading plan to a plain text file. If no output filename is specified, the filename will be the name of the plan plus ".plan". Use "-" to write to standard output.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output filename")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	p, err := s.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read plan: %w", err)
	}

	output := exportOutput
	if output == "" {
		output = p.Name + ".plan"
	}

	if output == "-" {
		return p.WriteText(cmd.OutOrStdout())
	}

	if _, err := os.Stat(output); err == nil {
		return fmt.Errorf("the output file '%s' already exists and will not be overwritten", output)
	}

	var buf bytes.Buffer
	if err := p.WriteText(&buf); err != nil {
		return fmt.Errorf("could not write plan text: %w", err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write output file: %w", err)
	}

	fmt.Printf("Wrote plan '%s' to '%s'\n", p.Name, output)
	return nil
}
