// Command sevensegdemo renders a numeric string as seven-segment digits
// and saves the result as a PNG.
//
// Settings come from flags, or from a TOML file via -config:
//
//	text = "3.141592"
//	cell_width = 48
//	cell_height = 80
//	foreground = "red"
//	background = "black"
//	line_width_ratio = 0.2
//	output = "digits.png"
//
// Colors are SVG 1.1 color names.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/sevenseg"
	"github.com/gogpu/sevenseg/ggpix"
)

type config struct {
	Text            string  `toml:"text"`
	CellWidth       int     `toml:"cell_width"`
	CellHeight      int     `toml:"cell_height"`
	Foreground      string  `toml:"foreground"`
	Background      string  `toml:"background"`
	LineWidthRatio  float64 `toml:"line_width_ratio"`
	PointWidthRatio float64 `toml:"point_width_ratio"`
	Output          string  `toml:"output"`
}

func defaultConfig() config {
	return config{
		Text:       "0123456789.",
		CellWidth:  48,
		CellHeight: 80,
		Foreground: "red",
		Output:     "sevenseg.png",
	}
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file (overrides the other flags)")
		text       = flag.String("text", "", "string to render (digits and '.')")
		width      = flag.Int("width", 0, "character cell width in pixels")
		height     = flag.Int("height", 0, "character cell height in pixels")
		foreground = flag.String("fg", "", "foreground color name")
		background = flag.String("bg", "", "background color name (empty for none)")
		output     = flag.String("output", "", "output PNG file")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
	}
	if *text != "" {
		cfg.Text = *text
	}
	if *width > 0 {
		cfg.CellWidth = *width
	}
	if *height > 0 {
		cfg.CellHeight = *height
	}
	if *foreground != "" {
		cfg.Foreground = *foreground
	}
	if *background != "" {
		cfg.Background = *background
	}
	if *output != "" {
		cfg.Output = *output
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	fg, err := namedColor(cfg.Foreground)
	if err != nil {
		return err
	}

	var opts []sevenseg.Option
	if cfg.LineWidthRatio != 0 {
		opts = append(opts, sevenseg.WithLineWidthRatio(cfg.LineWidthRatio))
	}
	if cfg.PointWidthRatio != 0 {
		opts = append(opts, sevenseg.WithPointWidthRatio(cfg.PointWidthRatio))
	}

	font := sevenseg.New(cfg.CellWidth, cfg.CellHeight, fg, opts...)
	if cfg.Background != "" {
		bg, err := namedColor(cfg.Background)
		if err != nil {
			return err
		}
		font.SetBackgroundColor(&bg)
	}

	metrics := font.MeasureString(cfg.Text, image.Pt(0, 0), sevenseg.BaselineTop)
	pm := gg.NewPixmap(metrics.BoundingBox.Dx(), font.LineHeight())

	if _, err := font.DrawString(ggpix.New(pm), cfg.Text, image.Pt(0, 0), sevenseg.BaselineTop); err != nil {
		return fmt.Errorf("render %q: %w", cfg.Text, err)
	}
	if err := pm.SavePNG(cfg.Output); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Rendered %q: %d×%d pixels to %s\n",
		cfg.Text, metrics.BoundingBox.Dx(), font.LineHeight(), cfg.Output)
	return nil
}

func namedColor(name string) (gg.RGBA, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return gg.RGBA{}, fmt.Errorf("unknown color name %q", name)
	}
	return gg.FromColor(c), nil
}
