package main

import (
	"fmt"
	"os"

	"github.com/kass/go-danger-map/internal/config"
	"github.com/kass/go-danger-map/pkg/dangermap"
	"github.com/kass/go-danger-map/pkg/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool
	cfg        *config.Config
)

// outputDir locates where render writes its files
var outputDir = export.ScriptDir

var (
	withGeoJSON bool
	dedupe      bool
	force       bool
)

var rootCmd = &cobra.Command{
	Use:   "dangermap",
	Short: "Map homes against a cluster of robbery incidents",
	Long: `Computes the centroid of robbery incidents, draws a danger zone around it
and marks each home as safe or dangerous by its geodesic distance to the centroid.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if verbose {
			cfg.Log.Level = "debug"
		}
		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runRender,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the danger map to index.html",
	Long: `Build the danger map and write index.html next to the dangermap binary.
When run through go run the binary lives in a temp dir, so the map is
written to the working directory instead.`,
	RunE:  runRender,
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print the safety of every home",
	Long:  `Classify every home against the danger zone without writing any file.`,
	RunE:  runClassify,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample dangermap.yaml",
	Long:  `Write the current configuration, including the sample scenario, to dangermap.yaml.`,
	RunE:  runInit,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (default ./dangermap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	for _, c := range []*cobra.Command{rootCmd, renderCmd} {
		c.Flags().BoolVar(&withGeoJSON, "geojson", false, "Also write index.geojson")
		c.Flags().BoolVar(&dedupe, "dedupe", false, "Draw each incident pair once")
	}
	classifyCmd.Flags().BoolVar(&dedupe, "dedupe", false, "Draw each incident pair once")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing dangermap.yaml")

	rootCmd.AddCommand(renderCmd, classifyCmd, initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	applyFlags(cmd)

	res, err := buildFromConfig(cfg)
	if err != nil {
		return err
	}

	dir, err := outputDir()
	if err != nil {
		return err
	}

	paths, err := export.Exporter{
		Dir:     dir,
		Title:   cfg.Map.Title,
		GeoJSON: cfg.Output.GeoJSON,
	}.Export(res.Canvas)
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(res))
	fmt.Printf("Map generated in %s\n", paths.HTML)
	if paths.GeoJSON != "" {
		fmt.Printf("GeoJSON written to %s\n", paths.GeoJSON)
	}
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	applyFlags(cmd)

	res, err := buildFromConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(res))
	fmt.Println(renderAssessments(res))
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultFileName
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.WriteFile(path, cfg); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", path)
	return nil
}

// applyFlags lets explicitly set flags override the loaded config
func applyFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("geojson"); f != nil && f.Changed {
		cfg.Output.GeoJSON = withGeoJSON
	}
	if f := cmd.Flags().Lookup("dedupe"); f != nil && f.Changed {
		cfg.Map.DedupeSegments = dedupe
	}
}

func buildFromConfig(c *config.Config) (*dangermap.Result, error) {
	return dangermap.Build(c.Scenario.Incidents, c.Scenario.Homes, c.Scenario.RadiusMeters, optionsFromConfig(c))
}

func optionsFromConfig(c *config.Config) dangermap.Options {
	return dangermap.Options{
		Zoom:           dangermap.ZoomLevel(c.Map.Zoom),
		SafeColor:      c.Map.SafeColor,
		DangerColor:    c.Map.DangerColor,
		BorderColor:    c.Map.BorderColor,
		FillColor:      c.Map.FillColor,
		Labels:         c.Scenario.Labels,
		DedupeSegments: c.Map.DedupeSegments,
		DistanceModel:  c.Map.DistanceModel,
		IconPath:       c.Map.IconPath,
		IconSize:       c.Map.IconSize,
		TileURL:        c.Map.TileURL,
		Attribution:    c.Map.Attribution,
	}
}
