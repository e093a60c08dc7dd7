package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"periodic-heatmap/colormap"
	"periodic-heatmap/element"
	"periodic-heatmap/export"
	"periodic-heatmap/layout"
	"periodic-heatmap/render"
	"periodic-heatmap/score"
	"periodic-heatmap/viewer"
)

// --- Configuration ---
const (
	svgPath  = "./periodic_table.svg"
	jsonPath = "elements.json"
)

var (
	scoresFlag   = flag.String("scores", "", "YAML file mapping element symbols to scores (default: built-in table)")
	elementsFlag = flag.String("elements", "", "element dataset JSON (default: built-in dataset)")
	pngFlag      = flag.String("png", "", "also write a raster preview to this path")
	noViewFlag   = flag.Bool("no-view", false, "do not open the interactive viewer")
	debugFlag    = flag.Bool("debug", false, "write the log to "+logDir+"/"+logFileName)
)

// config holds the paths of one run.
type config struct {
	svgPath      string
	jsonPath     string
	pngPath      string
	scoresPath   string
	elementsPath string
}

// --- Main Program ---

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := config{
		svgPath:      svgPath,
		jsonPath:     jsonPath,
		pngPath:      *pngFlag,
		scoresPath:   *scoresFlag,
		elementsPath: *elementsFlag,
	}
	fig, err := generate(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *noViewFlag || !isTerminal(os.Stdout) {
		return
	}
	if err := show(fig); err != nil {
		log.Printf("Warning: could not open viewer: %v", err)
	}
}

// generate runs the whole pipeline except the viewer and returns the figure.
func generate(cfg config) (*render.Figure, error) {
	// 1. Load the element reference data and the scores
	src, err := loadSource(cfg.elementsPath)
	if err != nil {
		return nil, err
	}
	scores, err := loadScores(cfg.scoresPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d elements, %d explicit scores", src.Count(), len(scores))

	// 2. Place every element on the grid
	res, err := layout.Build(src, scores)
	if err != nil {
		return nil, err
	}
	if len(res.Skipped) > 0 {
		log.Printf("Warning: %d elements have no group and were left off the table: %v", len(res.Skipped), res.Skipped)
	}

	// 3. Draw the cells and save the vector image
	fig := render.Draw(res.Cells, colormap.Default())
	if err := saveFile(cfg.svgPath, func(w io.Writer) error { return render.WriteSVG(w, fig) }); err != nil {
		return nil, err
	}
	fmt.Println("Created", cfg.svgPath)

	if cfg.pngPath != "" {
		opts := render.PNGOptions{}
		if err := saveFile(cfg.pngPath, func(w io.Writer) error { return render.WritePNG(w, fig, opts) }); err != nil {
			return nil, err
		}
		fmt.Println("Created", cfg.pngPath)
	}

	// 4. Query the reference data again for the metadata table
	catalog, err := export.Collect(src)
	if err != nil {
		return nil, err
	}
	if err := export.WriteFile(cfg.jsonPath, catalog); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", cfg.jsonPath, err)
	}
	fmt.Printf("Created %s with %d elements\n", cfg.jsonPath, len(catalog))

	return fig, nil
}

func loadSource(path string) (element.Source, error) {
	if path == "" {
		src, err := element.Embedded()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in elements: %w", err)
		}
		return src, nil
	}
	src, err := element.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return src, nil
}

func loadScores(path string) (score.Table, error) {
	if path == "" {
		scores, err := score.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in scores: %w", err)
		}
		return scores, nil
	}
	scores, err := score.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return scores, nil
}

// saveFile creates path and hands it to write. A failed write leaves a partial file.
func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// show opens the terminal viewer and blocks until it is closed.
func show(fig *render.Figure) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	// Restore the terminal before a panic reaches the user
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	viewer.New(screen, fig).Run()
	screen.Fini()
	return nil
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
