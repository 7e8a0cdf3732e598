package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/notation"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate <spec>...",
		Short: "Check specs without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			opts := c.options(drawFlags{padding: -1})
			parser := opts.Parser()

			invalid := 0
			for _, arg := range args {
				spec := notation.Normalize(arg, cfg.ReferencePrefix)
				tokens, err := parser.Parse(spec)
				if err != nil {
					invalid++
					printError("%s %s", spec, StyleDim.Render(errors.UserMessage(err)))
					continue
				}
				printSuccess("%s", spec)
				if verbose {
					for _, tok := range tokens {
						printDetail("%-6s %s → %s", tok.Raw, tok.Action, tok.Coord)
					}
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d specs invalid", invalid, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verbose, "tokens", false, "list each token's action and target cell")
	return cmd
}
