package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/execmatch/internal/pipeline"
	"github.com/sells-group/execmatch/internal/refdata"
)

var attributeCmd = &cobra.Command{
	Use:   "attribute",
	Short: "Attribute discovered contacts to named entities",
	Long: `Reads a page bundle (raw text plus located contacts and entities)
and assigns each contact to its most probable person, printing the
attributions as JSON.

Example:
  execmatch attribute --input pages/acme_contact.json`,
	RunE: runAttribute,
}

func init() {
	attributeCmd.Flags().String("input", "", "path to page bundle JSON (required)")
	_ = attributeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(attributeCmd)
}

func runAttribute(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")

	bundle, err := refdata.LoadPageBundle(inputPath)
	if err != nil {
		return err
	}

	engine := pipeline.New(cfg.Matcher, cfg.Attributor)
	attributions := engine.AttributeContacts(bundle.RawText, bundle.Contacts, bundle.Entities)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(attributions); err != nil {
		return eris.Wrap(err, "attribute: encode results")
	}

	return nil
}
