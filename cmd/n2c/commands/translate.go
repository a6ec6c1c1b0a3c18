package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flashpoint493/NodeToCode-sub000/config"
	"github.com/flashpoint493/NodeToCode-sub000/ir"
	"github.com/flashpoint493/NodeToCode-sub000/logger"
	"github.com/flashpoint493/NodeToCode-sub000/translator"
)

var (
	translateOutput  string
	translateCompact bool
	translateEnhance bool
)

// TranslateCmd represents the translate command
var TranslateCmd = &cobra.Command{
	Use:   "translate <snapshot.json>",
	Short: "Translate a blueprint snapshot file to graph JSON",
	Long: `Translate a blueprint snapshot file into the canonical graph JSON.

The snapshot is the serialized host contract: blueprint metadata plus the
ordered node list with pins and links. Output goes to stdout by default,
or into the configured output directory with --output.

Examples:
  n2c translate door.json                  # Graph JSON on stdout
  n2c translate door.json --enhance        # Include short-ID/GUID pairs
  n2c translate door.json -o door_ir.json  # Write to output.dir/door_ir.json`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	TranslateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "Output file name (written under output.dir)")
	TranslateCmd.Flags().BoolVar(&translateCompact, "compact", false, "Compact JSON output (overrides output.pretty)")
	TranslateCmd.Flags().BoolVar(&translateEnhance, "enhance", false, "Attach full GUIDs alongside short IDs")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", args[0], err)
	}

	nodes, meta, err := translator.LoadSnapshot(data)
	if err != nil {
		return fmt.Errorf("failed to parse snapshot %s: %w", args[0], err)
	}

	res, err := translator.New().Translate(nodes, meta)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	for _, w := range res.Warnings {
		logger.Warnw("translation warning",
			logger.FieldComponent, "translate",
			logger.FieldBlueprint, meta.Name,
			"code", w.Code,
			"message", w.Message,
		)
	}

	pretty := cfg.Output.Pretty && !translateCompact
	out, err := ir.ToJSON(res.Blueprint, pretty)
	if err != nil {
		return fmt.Errorf("failed to serialize blueprint: %w", err)
	}

	if translateEnhance {
		out = ir.EnhanceWithIdentifiers(out, res.NodeIDs, res.PinIDs)
	}

	if translateOutput == "" {
		fmt.Println(out)
		return nil
	}

	outDir := cfg.GetOutputDir()
	if err := os.MkdirAll(outDir, config.DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	outPath := filepath.Join(outDir, translateOutput)
	if err := os.WriteFile(outPath, []byte(out+"\n"), config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	logger.Infow("blueprint translated",
		logger.FieldComponent, "translate",
		logger.FieldBlueprint, meta.Name,
		logger.FieldNodeCount, res.Blueprint.NodeCount(),
		logger.FieldWarnings, len(res.Warnings),
		"output", outPath,
	)
	return nil
}
