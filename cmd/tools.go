package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var toolsFormat string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool definitions exposed to the agent",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().StringVarP(&toolsFormat, "format", "f", "json", "Output format: json or yaml")
}

func runTools(cmd *cobra.Command, _ []string) error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	data, err := encodeDefinitions(c.Registry().AllTools().Definitions(), toolsFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
	return nil
}

func encodeDefinitions(defs []map[string]any, format string) ([]byte, error) {
	switch format {
	case "json", "":
		return json.MarshalIndent(defs, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(defs)
	}
	return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
}
