// Command shapefill runs the hole-completion pipeline against a binary
// raster image loaded from disk and reports the reconstructed interior.
// It exists to exercise internal/complete end to end; it is a demo
// harness, not a product surface.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"shapefill/internal/complete"
	"shapefill/internal/raster"

	_ "golang.org/x/image/tiff"
)

const (
	appName    = "shapefill"
	appVersion = "0.1.0"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "", "path to the source image (PNG/JPEG/TIFF)")
	holeSpec := flag.String("hole", "", "hole rectangle as left,top,width,height")
	threshold := flag.Int("threshold", 128, "grayscale value at or below which a pixel is foreground")
	configPath := flag.String("config", "", "path to a JSON file overriding the default Config")
	expand := flag.Bool("expand", false, "retry with a 1px fail-safe expansion if the plain call fails")
	out := flag.String("out", "", "path to write the reconstructed matrix as text; empty prints a summary to stdout")
	flag.Parse()

	if *imagePath == "" || *holeSpec == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -image <path> -hole left,top,width,height [-threshold N] [-config path] [-expand] [-out path]\n", appName)
		os.Exit(1)
	}

	log.Printf("%s v%s starting", appName, appVersion)

	hole, err := parseHole(*holeSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -hole: %v\n", err)
		os.Exit(1)
	}

	img, err := loadBitImage(*imagePath, *threshold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	if !hole.WithinImage(img.Width(), img.Height()) {
		fmt.Fprintf(os.Stderr, "Hole rectangle falls outside the image bounds\n")
		os.Exit(1)
	}

	cfg := complete.DefaultConfig()
	if *configPath != "" {
		cfg, err = loadConfigOverride(*configPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	var filled *raster.FilledHole
	if *expand {
		filled, err = complete.CompleteShapeExpandable(img, hole, cfg)
	} else {
		filled, err = complete.CompleteShape(img, hole, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Completion failed: %v\n", err)
		os.Exit(1)
	}

	if *out != "" {
		if err := writeMatrix(*out, filled); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
			os.Exit(1)
		}
		log.Printf("wrote %dx%d matrix to %s", filled.Width, filled.Height, *out)
		return
	}

	printSummary(filled)
}

// parseHole parses "left,top,width,height" into a HoleRect.
func parseHole(spec string) (raster.HoleRect, error) {
	var left, top, width, height int
	n, err := fmt.Sscanf(spec, "%d,%d,%d,%d", &left, &top, &width, &height)
	if err != nil || n != 4 {
		return raster.HoleRect{}, fmt.Errorf("expected left,top,width,height, got %q", spec)
	}
	if width <= 0 || height <= 0 {
		return raster.HoleRect{}, fmt.Errorf("width and height must be positive, got %d,%d", width, height)
	}
	return raster.NewHoleRect(left, top, width, height), nil
}

// loadBitImage decodes an image file and thresholds it into a binary
// raster.BitImage: a pixel is foreground iff its luminance is at or
// below threshold.
func loadBitImage(path string, threshold int) (*raster.BitImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := raster.NewBitImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray, _, _, _ := grayAt(src, bounds.Min.X+x, bounds.Min.Y+y)
			out.Set(x, y, gray <= threshold)
		}
	}
	return out, nil
}

func grayAt(img image.Image, x, y int) (gray, r, g, b int) {
	cr, cg, cb, _ := img.At(x, y).RGBA()
	r, g, b = int(cr>>8), int(cg>>8), int(cb>>8)
	gray = (r + g + b) / 3
	return gray, r, g, b
}

// configOverride mirrors complete.Config with pointer fields so a JSON
// file can override only the tunables it mentions.
type configOverride struct {
	SimplifyTolerance *float64 `json:"simplify_tolerance"`
	MaxBipartitions   *int     `json:"max_bipartitions"`
	Curve             *struct {
		OutsetRatio               *float64 `json:"outset_ratio"`
		MinSegmentLength          *float64 `json:"min_segment_length"`
		SmoothMaxIterations       *int     `json:"smooth_max_iterations"`
		CornerThresholdDegrees    *float64 `json:"corner_threshold_degrees"`
		TailTangentNumPoints      *int     `json:"tail_tangent_num_points"`
		TailWeightMultiplier      *float64 `json:"tail_weight_multiplier"`
		ControlPointsRetractRatio *float64 `json:"control_points_retract_ratio"`
	} `json:"curve"`
}

func loadConfigOverride(path string, cfg complete.Config) (complete.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	var override configOverride
	if err := json.Unmarshal(data, &override); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if override.SimplifyTolerance != nil {
		cfg.SimplifyTolerance = *override.SimplifyTolerance
	}
	if override.MaxBipartitions != nil {
		cfg.MaxBipartitions = *override.MaxBipartitions
	}
	if c := override.Curve; c != nil {
		if c.OutsetRatio != nil {
			cfg.Curve.OutsetRatio = *c.OutsetRatio
		}
		if c.MinSegmentLength != nil {
			cfg.Curve.MinSegmentLength = *c.MinSegmentLength
		}
		if c.SmoothMaxIterations != nil {
			cfg.Curve.SmoothMaxIterations = *c.SmoothMaxIterations
		}
		if c.CornerThresholdDegrees != nil {
			cfg = cfg.WithCornerThresholdDegrees(*c.CornerThresholdDegrees)
		}
		if c.TailTangentNumPoints != nil {
			cfg.Curve.TailTangentNumPoints = *c.TailTangentNumPoints
		}
		if c.TailWeightMultiplier != nil {
			cfg.Curve.TailWeightMultiplier = *c.TailWeightMultiplier
		}
		if c.ControlPointsRetractRatio != nil {
			cfg.Curve.ControlPointsRetractRatio = *c.ControlPointsRetractRatio
		}
	}
	return cfg, nil
}

func writeMatrix(path string, filled *raster.FilledHole) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for y := 0; y < filled.Height; y++ {
		for x := 0; x < filled.Width; x++ {
			switch filled.At(x, y) {
			case raster.Structure:
				fmt.Fprint(f, "#")
			case raster.Texture:
				fmt.Fprint(f, ".")
			default:
				fmt.Fprint(f, " ")
			}
		}
		fmt.Fprintln(f)
	}
	return nil
}

func printSummary(filled *raster.FilledHole) {
	var blank, structure, texture int
	for _, c := range filled.Cells {
		switch c {
		case raster.Structure:
			structure++
		case raster.Texture:
			texture++
		default:
			blank++
		}
	}
	fmt.Printf("%dx%d reconstructed: %d blank, %d structure, %d texture\n",
		filled.Width, filled.Height, blank, structure, texture)
}
